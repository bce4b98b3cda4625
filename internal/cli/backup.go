package cli

import "context"

func backupFailed(err error) error {
	return &commandError{msg: "Backup failed: " + err.Error(), err: err}
}

// Export writes a snapshot to the backup directory or, with remote, to S3.
func (a *App) Export(ctx context.Context, remote bool) error {
	svc, err := a.backupService(ctx, remote)
	if err != nil {
		return backupFailed(err)
	}
	key, err := svc.Export(ctx)
	if err != nil {
		return backupFailed(err)
	}
	a.printf("Backup written: %s\n", key)
	return nil
}

// Import restores the snapshot stored under ref, a key or local file path.
func (a *App) Import(ctx context.Context, ref string, remote bool) error {
	svc, err := a.backupService(ctx, remote)
	if err != nil {
		return backupFailed(err)
	}
	snap, err := svc.Import(ctx, ref)
	if err != nil {
		return backupFailed(err)
	}
	a.printf("Restored %d records from %s\n", len(snap.Records), ref)
	return nil
}
