// Package config loads runtime configuration for the SkillVerse CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see Defaults).
//  2. Optional JSON file selected with -c / --config.
//  3. Environment variables prefixed with SKILLVERSE_, optionally read from a
//     dotenv file (--env-file, default ".env"). Real environment variables win
//     over the file.
//  4. Command-line flags, applied only when set explicitly.
//
// # JSON schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "/home/ana/.config/skillverse/skillverse.db",
//	  "digest_scheme": "argon2id",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_backend": "slog",
//	  "backup_dir": "/home/ana/.config/skillverse/backups",
//	  "s3": {"endpoint": "http://127.0.0.1:9000", "region": "us-east-1", "bucket": "skillverse",
//	         "access_key": "minioadmin", "secret_key": "minioadmin"}
//	}
package config
