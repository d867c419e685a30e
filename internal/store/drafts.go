package store

import (
	"encoding/json"
	"fmt"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/log"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/permit"
)

// draftKey is the fixed slot holding the current session's in-progress form.
const draftKey = "permit_draft"

// submissionKeyPrefix prefixes the per-application slots for submitted
// records.
const submissionKeyPrefix = "application_"

// DraftStore owns the wizard's slots in the underlying KV: the single draft
// slot plus one immutable slot per submitted application.
type DraftStore struct {
	kv KV
}

// NewDraftStore wraps kv with the wizard's key layout.
func NewDraftStore(kv KV) *DraftStore {
	return &DraftStore{kv: kv}
}

// LoadDraft reads the draft slot. A missing slot, a read failure, or
// unparsable contents all report "no draft": draft recovery is best-effort
// and must never block the form from starting with defaults.
func (s *DraftStore) LoadDraft() (permit.Draft, bool) {
	raw, ok, err := s.kv.Get(draftKey)
	if err != nil {
		log.Warn(log.CatStore, "draft read failed", "error", err)
		return permit.Draft{}, false
	}
	if !ok {
		return permit.Draft{}, false
	}

	var d permit.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		log.Warn(log.CatStore, "draft unparsable, starting fresh", "error", err)
		return permit.Draft{}, false
	}
	return d, true
}

// SaveDraft overwrites the draft slot with the full field set.
func (s *DraftStore) SaveDraft(d permit.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := s.kv.Set(draftKey, string(raw)); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// ClearDraft removes the draft slot. Called exactly once per successful
// submission.
func (s *DraftStore) ClearDraft() error {
	if err := s.kv.Delete(draftKey); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

// PersistSubmission writes the submitted record under its application ID.
// The record is never read back by the wizard; it is kept for external
// lookup.
func (s *DraftStore) PersistSubmission(sub permit.Submission) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}
	key := submissionKeyPrefix + sub.ApplicationID
	if err := s.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("persisting submission %s: %w", sub.ApplicationID, err)
	}
	log.Info(log.CatStore, "submission persisted", "applicationId", sub.ApplicationID)
	return nil
}
