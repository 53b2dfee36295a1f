package mail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/edvin/mailsink/internal/config"
	"github.com/edvin/mailsink/internal/model"
)

// preloadWorkers bounds the concurrent .eml readers during a preload pass.
const preloadWorkers = 4

// Service owns the user directory and mailbox store and carries the running
// flag the readiness endpoint reports. Reset returns both collaborators to
// their provisioned startup state.
type Service struct {
	cfg     *config.Config
	logger  zerolog.Logger
	dir     *Directory
	store   *Store
	running atomic.Bool
}

func NewService(cfg *config.Config, logger zerolog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
		dir:    NewDirectory(),
		store:  NewStore(),
	}
}

func (s *Service) Directory() *Directory { return s.dir }
func (s *Service) Store() *Store         { return s.store }

// Running reports whether the mail service is accepting traffic.
func (s *Service) Running() bool { return s.running.Load() }

// SetRunning flips the readiness signal.
func (s *Service) SetRunning(v bool) { s.running.Store(v) }

// Start provisions configured users, runs the preload pass and marks the
// service running.
func (s *Service) Start() error {
	if err := s.provision(); err != nil {
		return err
	}
	s.running.Store(true)
	return nil
}

// Stop marks the service as no longer accepting traffic.
func (s *Service) Stop() {
	s.running.Store(false)
}

// CreateUser adds a directory entry and provisions its mailbox. The directory
// insert is atomic; mailbox provisioning on the in-memory store cannot fail,
// so a returned error always means no user was created.
func (s *Service) CreateUser(email, login, password string) (model.User, error) {
	user, err := s.dir.Create(email, login, password)
	if err != nil {
		return model.User{}, err
	}
	s.store.Provision(user)
	return user, nil
}

// DeleteUser removes the directory entry only. Mailbox data is left to the
// store's own lifecycle; user deletion does not cascade.
func (s *Service) DeleteUser(user model.User) {
	s.dir.Delete(user)
}

// Purge removes all messages from all mailboxes.
func (s *Service) Purge() error {
	return s.store.Purge()
}

// Reset clears the directory and store and reprovisions them from
// configuration, leaving state equivalent to process startup. The running
// flag is untouched; reset does not interrupt traffic.
func (s *Service) Reset() error {
	s.dir.Clear()
	s.store.Clear()
	if err := s.provision(); err != nil {
		return err
	}
	s.logger.Info().Msg("service state reset")
	return nil
}

func (s *Service) provision() error {
	for _, u := range s.cfg.Users {
		user, err := s.dir.Create(u.Email, u.Login, u.Password)
		if err != nil {
			return fmt.Errorf("provision user '%s': %w", u.Login, err)
		}
		s.store.Provision(user)
	}
	if s.cfg.PreloadDirectory != "" {
		if err := s.preload(s.cfg.PreloadDirectory); err != nil {
			return fmt.Errorf("preload from %s: %w", s.cfg.PreloadDirectory, err)
		}
	}
	return nil
}

// preload walks a directory of <address>/<name>.eml files and delivers each
// file into the address owner's INBOX, creating the user if absent. Files are
// read concurrently; delivery order within a mailbox is not defined.
func (s *Service) preload(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(preloadWorkers)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		address := entry.Name()
		user, ok := s.dir.Get(address)
		if !ok {
			user, ok = s.dir.GetByEmail(address)
		}
		if !ok {
			user, err = s.CreateUser(address, address, address)
			if err != nil {
				return fmt.Errorf("create preload user '%s': %w", address, err)
			}
		}
		s.store.Provision(user)

		files, err := os.ReadDir(filepath.Join(dir, address))
		if err != nil {
			return err
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".eml") {
				continue
			}
			path := filepath.Join(dir, address, file.Name())
			u := user
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				if _, err := s.store.Deliver(u, "message/rfc822", string(data)); err != nil {
					return fmt.Errorf("deliver %s: %w", path, err)
				}
				s.logger.Debug().Str("user", u.Login).Str("file", path).Msg("preloaded message")
				return nil
			})
		}
	}

	return g.Wait()
}
