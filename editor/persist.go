package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/storage"
)

// loadStored replaces the empty document with the stored one. Read failures
// and malformed content leave the document empty; the host never sees them.
func (m *Model) loadStored() {
	if !m.cfg.UseLocalStorage {
		return
	}
	log := applog.WithOperation(m.log, "load")

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.IOTimeout)
	defer cancel()

	data, err := m.store.Load(ctx, m.key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug("no stored document", "key", m.key)
		return
	}
	if err != nil {
		log.Warn("stored document unreadable, starting empty", "key", m.key, "error", err)
		return
	}
	if err := m.eng.Deserialize(data); err != nil {
		log.Warn("stored document malformed, starting empty", "key", m.key, "error", err)
		return
	}
	log.Debug("stored document loaded", "key", m.key, "bytes", len(data))
}

// persist writes the current content when the save policy allows it and
// reports whether the write succeeded.
func (m *Model) persist() bool {
	if !m.cfg.SavePolicy.shouldSave(m.cfg.UseLocalStorage) {
		return false
	}
	log := applog.WithOperation(m.log, "save")

	data, err := m.eng.Serialize()
	if err != nil {
		m.saveFailed(log, fmt.Errorf("serialize document: %w", err))
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.IOTimeout)
	defer cancel()
	if err := m.store.Save(ctx, m.key, data); err != nil {
		m.saveFailed(log, fmt.Errorf("save %s: %w", m.key, err))
		return false
	}
	m.notice = ""
	return true
}

func (m *Model) saveFailed(log *slog.Logger, err error) {
	log.Warn("document not saved", "error", err)
	m.notice = "Not saved: " + err.Error()
	if m.cfg.OnSaveError != nil {
		m.cfg.OnSaveError(err)
	}
}
