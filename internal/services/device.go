package services

import (
	"context"

	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
)

// DeviceService performs whole-store operations.
type DeviceService struct {
	store kv.Store
	log   logging.Logger
}

func NewDeviceService(store kv.Store, log logging.Logger) *DeviceService {
	if log == nil {
		log = logging.Nop()
	}
	return &DeviceService{store: store, log: log}
}

// ClearData wipes every record: directory, session, progress and career.
func (d *DeviceService) ClearData(ctx context.Context) error {
	if err := d.store.Clear(ctx); err != nil {
		return err
	}
	d.log.Warn(ctx, "device data cleared")
	return nil
}
