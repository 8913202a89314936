// Package ledger persists the latest video id per slot and a bounded upload
// history across daily runs. One JSON document per deployment, whole-document
// replace on write, single writer assumed (the scheduler never overlaps
// upload runs).
package ledger

import (
	"encoding/json"
	"fmt"
	"os"

	"daily-goals-pipeline/types"
)

// HistoryLimit bounds the retained upload history.
const HistoryLimit = 100

// VideoRef is the latest upload for one slot.
type VideoRef struct {
	VideoID    string `json:"videoId"`
	Date       string `json:"date"`
	UploadedAt string `json:"uploadedAt"`
}

// HistoryEntry is one past upload event, most recent first.
type HistoryEntry struct {
	Type       types.Slot `json:"type"`
	VideoID    string     `json:"videoId"`
	Date       string     `json:"date"`
	UploadedAt string     `json:"uploadedAt"`
	Title      string     `json:"title"`
}

// Ledger is the persisted status document.
type Ledger struct {
	LastUpdated string                   `json:"lastUpdated"`
	Videos      map[types.Slot]*VideoRef `json:"videos"`
	History     []HistoryEntry           `json:"history"`
}

// Load reads the ledger, returning an empty document when none exists yet.
// A present but unreadable file is an error; there is no repair logic.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Ledger{Videos: make(map[types.Slot]*VideoRef)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read status ledger: %w", err)
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse status ledger %s: %w", path, err)
	}
	if l.Videos == nil {
		l.Videos = make(map[types.Slot]*VideoRef)
	}
	return &l, nil
}

// RecordUpload overwrites the slot's latest video, prepends one history
// entry and truncates history to the limit. This is the only mutation path.
func (l *Ledger) RecordUpload(slot types.Slot, videoID, date, uploadedAt, title string) {
	if l.Videos == nil {
		l.Videos = make(map[types.Slot]*VideoRef)
	}
	l.Videos[slot] = &VideoRef{
		VideoID:    videoID,
		Date:       date,
		UploadedAt: uploadedAt,
	}

	entry := HistoryEntry{
		Type:       slot,
		VideoID:    videoID,
		Date:       date,
		UploadedAt: uploadedAt,
		Title:      title,
	}
	l.History = append([]HistoryEntry{entry}, l.History...)
	if len(l.History) > HistoryLimit {
		l.History = l.History[:HistoryLimit]
	}

	l.LastUpdated = uploadedAt
}

// Save replaces the ledger document on disk. Written to a temp file first
// and renamed so a crash mid-write never leaves a truncated ledger.
func Save(path string, l *Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal status ledger: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write status ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace status ledger: %w", err)
	}
	return nil
}
