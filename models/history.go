package models

import (
	"fmt"
	"time"
)

// Version identifies a point in an item's history. Server-confirmed versions
// carry the remote sequence number; optimistic versions created locally carry
// the creation timestamp instead, so the two can never collide and a local
// version's recency is derivable from the value itself.
type Version struct {
	remote int64
	local  int64 // unix milliseconds, non-zero only for local versions
}

func RemoteVersion(n int64) Version {
	return Version{remote: n}
}

func LocalVersion(at time.Time) Version {
	return Version{local: at.UnixMilli()}
}

func (v Version) IsLocal() bool {
	return v.local != 0
}

// Remote returns the server sequence number. Zero for local versions.
func (v Version) Remote() int64 {
	return v.remote
}

// LocalTime returns the creation time of an optimistic version.
// The zero time is returned for remote versions.
func (v Version) LocalTime() time.Time {
	if v.local == 0 {
		return time.Time{}
	}
	return time.UnixMilli(v.local)
}

func (v Version) String() string {
	if v.IsLocal() {
		return fmt.Sprintf("local-%d", v.local)
	}
	return fmt.Sprintf("v%d", v.remote)
}

// HistoryEntry is one record in an item's change history. Pending marks
// optimistic entries inserted locally before server confirmation.
type HistoryEntry struct {
	Version        Version `json:"version"`
	Checksum       string  `json:"checksum"`
	ChangeType     string  `json:"change_type"`
	ChangedByName  string  `json:"changed_by_name,omitempty"`
	ChangedByEmail string  `json:"changed_by_email,omitempty"`
	CreatedAt      string  `json:"created_at"`
	Pending        bool    `json:"pending"`
}

// CreatedTime parses the entry timestamp. ok is false when the server sent
// something unparsable; callers are expected to fall back to insertion order.
func (e HistoryEntry) CreatedTime() (t time.Time, ok bool) {
	if e.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, e.CreatedAt)
	if err != nil {
		t, err = time.Parse(time.RFC3339, e.CreatedAt)
	}
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
