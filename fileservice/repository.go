//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_upload_repository.go -package=mocks
package fileservice

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const uploadKeyPrefix = "upload:"

type IUploadRepository interface {
	Record(upload Upload) error
	Recent(limit int) ([]Upload, error)
}

// UploadRepository keeps an audit trail of stored objects in BadgerDB.
type UploadRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUploadRepository(db *badger.DB, log *slog.Logger) UploadRepository {
	return UploadRepository{db: db, log: log}
}

// Record persists one audit entry.
// The key is formatted as "upload:{timestamp_padded}:{key}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep entries distinct when two uploads land on the same nanosecond,
//     since the object key embeds a UUID.
func (r UploadRepository) Record(upload Upload) error {
	key := fmt.Sprintf("%s%019d:%s", uploadKeyPrefix, upload.StoredAt.UnixNano(), upload.Key)
	value, err := json.Marshal(upload)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Recent returns up to limit audit entries, newest first.
// Thanks to the padded timestamp in the key, a reverse prefix scan walks
// entries in reverse chronological order without sorting in memory.
func (r UploadRepository) Recent(limit int) ([]Upload, error) {
	var uploads []Upload
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(uploadKeyPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past every possible timestamp, then walk backwards.
		seekKey := append(prefix, []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(uploads) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d upload entries reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var upload Upload
				if err := json.Unmarshal(value, &upload); err != nil {
					return err
				}
				uploads = append(uploads, upload)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uploads, nil
}
