package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/FluidXR/tabletswitch/internal/remap"
	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

// Kind distinguishes journal entries.
type Kind string

const (
	KindConnected    Kind = "connected"
	KindDisconnected Kind = "disconnected"
	KindSwitch       Kind = "switch"
)

// Entry is one row of the journal, newest first when listed.
type Entry struct {
	Kind   Kind
	At     time.Time
	Detail string // device ids, comma separated
	Error  string // switch failure message, empty on success
}

// Stats summarizes the journal.
type Stats struct {
	Connects       int
	Disconnects    int
	Switches       int
	FailedSwitches int
}

// RecordConnection stores a connection transition.
func (j *DB) RecordConnection(at time.Time, connected bool, devices []xsetwacom.Device) error {
	_, err := j.db.Exec(
		`INSERT INTO connections (connected, devices, at) VALUES (?, ?, ?)`,
		connected, strings.Join(xsetwacom.IDs(devices), ","), at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record connection: %w", err)
	}
	return nil
}

// RecordSwitch stores a switch attempt and its outcome.
func (j *DB) RecordSwitch(at time.Time, res remap.Result, switchErr error) error {
	msg := ""
	if switchErr != nil {
		msg = switchErr.Error()
	}
	_, err := j.db.Exec(
		`INSERT INTO switches (mapped, error, at) VALUES (?, ?, ?)`,
		strings.Join(res.Mapped, ","), msg, at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record switch: %w", err)
	}
	return nil
}

// Recent returns up to limit entries of both kinds, newest first.
func (j *DB) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT kind, at, detail, error FROM (
		   SELECT CASE connected WHEN 1 THEN 'connected' ELSE 'disconnected' END AS kind,
		          at, devices AS detail, '' AS error, id
		   FROM connections
		   UNION ALL
		   SELECT 'switch' AS kind, at, mapped AS detail, error, id
		   FROM switches
		 )
		 ORDER BY at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind string
		var at int64
		if err := rows.Scan(&kind, &at, &e.Detail, &e.Error); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		e.Kind = Kind(kind)
		e.At = time.UnixMilli(at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetStats returns counts over the whole journal.
func (j *DB) GetStats() (Stats, error) {
	var s Stats
	err := j.db.QueryRow(
		`SELECT COALESCE(SUM(connected = 1), 0), COALESCE(SUM(connected = 0), 0) FROM connections`,
	).Scan(&s.Connects, &s.Disconnects)
	if err != nil {
		return s, fmt.Errorf("connection stats: %w", err)
	}
	err = j.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(error != ''), 0) FROM switches`,
	).Scan(&s.Switches, &s.FailedSwitches)
	if err != nil {
		return s, fmt.Errorf("switch stats: %w", err)
	}
	return s, nil
}

// Prune deletes entries older than before and returns how many were removed.
func (j *DB) Prune(before time.Time) (int64, error) {
	var total int64
	for _, table := range []string{"connections", "switches"} {
		res, err := j.db.Exec(`DELETE FROM `+table+` WHERE at < ?`, before.UnixMilli())
		if err != nil {
			return total, fmt.Errorf("prune %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
