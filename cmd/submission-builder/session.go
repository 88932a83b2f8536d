package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrea/submission-builder/internal/config"
	"github.com/kingrea/submission-builder/internal/logging"
	"github.com/kingrea/submission-builder/internal/store"
)

// session is everything a command needs: config, logger and a loaded store.
type session struct {
	config  *config.Config
	log     *logging.Logger
	logger  *zap.Logger
	store   *store.Store
	loaded  store.LoadResult
	warning string
}

func openSession(flags *rootFlags) (*session, error) {
	home, err := config.ResolveHome(flags.home)
	if err != nil {
		return nil, err
	}
	if err := config.InitHomeDir(home); err != nil {
		return nil, err
	}
	cfg, err := config.NewConfig(home)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel()
	if flags.verbose {
		level = "debug"
	}
	log, err := logging.New(cfg.LogsDir(), level)
	if err != nil {
		return nil, err
	}
	logger := log.Logger
	slot, err := store.OpenSlot(cfg.StorageBackend(), cfg.StateDir())
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	s := store.New(slot,
		store.WithKey(cfg.StorageKey()),
		store.WithLogger(logger),
	)
	res := s.Load()
	logger.Info("session opened",
		zap.String("home", home),
		zap.String("backend", cfg.StorageBackend()),
		zap.Stringer("load", res.Status),
	)
	sess := &session{
		config: cfg,
		log:    log,
		logger: logger,
		store:  s,
		loaded: res,
	}
	if res.Status == store.LoadCorrupt {
		sess.warning = fmt.Sprintf("⚠ Saved draft could not be read, starting fresh (kept as %s): %v", s.BackupKey(), res.Err)
	}
	return sess, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("close store", zap.Error(err))
	}
	_ = s.log.Close()
}
