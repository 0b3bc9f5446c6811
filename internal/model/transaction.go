package model

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// MaxNoteLength is the note cap enforced at the editing boundary. The core
// stores whatever it is given; collaborators truncate or reject before
// calling in.
const MaxNoteLength = 200

// Transaction is a single recorded money movement. Date carries the
// user-assigned calendar date; CreatedAt is the system creation timestamp
// and is never used for aggregation. The JSON field names are the persisted
// interchange format and must not change.
type Transaction struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Subcategory string    `json:"subcategory"`
	Amount      float64   `json:"amount"`
	Tags        []string  `json:"tags"`
	Note        string    `json:"note"`
	Account     string    `json:"account"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	return out
}

// AddTag appends tag unless an identical tag is already present. Matching is
// exact and case-sensitive.
func (t *Transaction) AddTag(tag string) {
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
}

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTransactionID generates a transaction identifier from the millisecond
// timestamp plus a nine character base-36 suffix. Collisions are
// astronomically unlikely, not impossible; the format matches previously
// persisted ids.
func NewTransactionID(now time.Time) string {
	suffix := make([]byte, 9)
	max := big.NewInt(int64(len(idSuffixAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken; fall back to the nanosecond clock.
			suffix[i] = idSuffixAlphabet[time.Now().UnixNano()%int64(len(idSuffixAlphabet))]
			continue
		}
		suffix[i] = idSuffixAlphabet[n.Int64()]
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}
