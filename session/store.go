package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const storeFileName = "session.json"

// Store persists the session record as a single JSON file under the data
// folder. It is the only durable client-side state the gateway owns.
type Store struct {
	path string
	log  zerolog.Logger
}

func NewStore(dataFolder string, log zerolog.Logger) *Store {
	return &Store{
		path: filepath.Join(dataFolder, storeFileName),
		log:  log,
	}
}

// Load reads the persisted session. Absence and corruption are both treated
// as "no session"; Load never fails.
func (s *Store) Load() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("session store unreadable, treating as no session")
		}
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session store corrupt, treating as no session")
		return nil
	}
	return &sess
}

// Save serializes the session, overwriting any prior value.
func (s *Store) Save(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[Store.Save] marshal session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "[Store.Save] create data folder")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[Store.Save] write session file")
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[Store.Clear] remove session file")
	}
	return nil
}
