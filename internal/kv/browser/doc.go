// Package browser keeps the key/value records in window.localStorage when the
// client is compiled for js/wasm. On other targets the package is empty.
package browser
