// Package wizard implements the form state controller for the permit
// application: the current field values, the four-step progression with
// per-step validation gating, and the submit flow that freezes the draft
// into an immutable record.
package wizard

import (
	"errors"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/log"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/permit"
)

// ErrFixFields signals that a step advance or a submit was blocked by
// validation. The per-field messages remain available via FieldError.
var ErrFixFields = errors.New("fix the highlighted fields before continuing")

// ErrNotAtReview signals a submit attempted before the review step.
var ErrNotAtReview = errors.New("submission is only allowed from the review step")

// DraftPersister is the storage collaborator the controller drives. Load
// reports absent for missing or unreadable drafts; it never fails.
type DraftPersister interface {
	LoadDraft() (permit.Draft, bool)
	SaveDraft(permit.Draft) error
	ClearDraft() error
	PersistSubmission(permit.Submission) error
}

// Controller holds the live form state. It is the sole writer of the step
// counter and of the in-memory draft; the UI reads through its accessors.
// All methods are synchronous and run on the UI event loop, so no locking
// is needed.
type Controller struct {
	store  DraftPersister
	draft  permit.Draft
	step   int
	errors map[permit.Field]string
	ready  bool
}

// New returns a controller starting at step 1 with default field values.
// Call Restore before rendering to merge any recovered draft.
func New(store DraftPersister) *Controller {
	return &Controller{
		store:  store,
		draft:  permit.DefaultDraft(),
		step:   1,
		errors: make(map[permit.Field]string),
	}
}

// Restore consults the store once and merges a recovered draft, if any.
// A corrupt or missing draft leaves the defaults in place. After Restore
// the controller is ready for rendering.
func (c *Controller) Restore() {
	if d, ok := c.store.LoadDraft(); ok {
		c.draft = d
		log.Info(log.CatWizard, "draft restored")
	}
	c.ready = true
}

// Ready reports whether the persistence layer has been consulted. The UI
// must not render form state before this is true.
func (c *Controller) Ready() bool {
	return c.ready
}

// Step returns the current step, 1 through 4.
func (c *Controller) Step() int {
	return c.step
}

// Draft returns a copy of the current field values.
func (c *Controller) Draft() permit.Draft {
	return c.draft
}

// Get returns the current value of a field.
func (c *Controller) Get(f permit.Field) string {
	return c.draft.Get(f)
}

// SetField writes a field unconditionally, re-validates that field so the
// error display tracks typing, and autosaves the full field set. A save
// failure is logged and swallowed: the in-memory state is authoritative and
// the store is local.
func (c *Controller) SetField(f permit.Field, value string) {
	c.draft.Set(f, value)
	c.ValidateFields(f)
	if err := c.store.SaveDraft(c.draft); err != nil {
		log.Warn(log.CatWizard, "draft autosave failed", "field", string(f), "error", err)
	}
}

// ValidateFields runs the rule table against the current values, restricted
// to the given fields (all fields when none are given). Per-field error
// annotations are refreshed for every checked field.
func (c *Controller) ValidateFields(fields ...permit.Field) []permit.FieldError {
	checked := fields
	if len(checked) == 0 {
		checked = permit.AllFields
	}
	for _, f := range checked {
		delete(c.errors, f)
	}

	errs := permit.Validate(c.draft, checked...)
	for _, e := range errs {
		c.errors[e.Field] = e.Message
	}
	return errs
}

// FieldError returns the current error annotation for a field, or "".
func (c *Controller) FieldError(f permit.Field) string {
	return c.errors[f]
}

// HasErrors reports whether any field currently carries an error annotation.
func (c *Controller) HasErrors() bool {
	return len(c.errors) > 0
}

// AdvanceStep validates the fields owned by the current step and, on
// success, moves forward one step (capped at the review step). On failure
// the step is unchanged and ErrFixFields is returned; the individual
// messages stay available for display.
func (c *Controller) AdvanceStep() error {
	// The review step owns no fields, so an empty subset validates nothing.
	if fields := permit.StepFields(c.step); len(fields) > 0 {
		if errs := c.ValidateFields(fields...); len(errs) > 0 {
			log.Debug(log.CatWizard, "step advance blocked", "step", c.step, "violations", len(errs))
			return ErrFixFields
		}
	}
	if c.step < permit.StepCount {
		c.step++
	}
	return nil
}

// RetreatStep moves back one step, floored at step 1. Moving backward never
// validates.
func (c *Controller) RetreatStep() {
	if c.step > 1 {
		c.step--
	}
}

// Submit finalizes the application. It is only legal from the review step
// and re-validates every field first; a validation failure rejects the
// submission with ErrFixFields and clears nothing. On success the
// submission record is persisted under its application ID, the draft slot
// is removed, and the form resets to defaults at step 1.
func (c *Controller) Submit() (permit.Submission, error) {
	if c.step != permit.StepCount {
		return permit.Submission{}, ErrNotAtReview
	}
	if errs := c.ValidateFields(); len(errs) > 0 {
		return permit.Submission{}, ErrFixFields
	}

	sub := permit.NewSubmission(c.draft)
	if err := c.store.PersistSubmission(sub); err != nil {
		return permit.Submission{}, err
	}
	if err := c.store.ClearDraft(); err != nil {
		log.Warn(log.CatWizard, "draft clear failed after submission", "error", err)
	}

	log.Info(log.CatWizard, "application submitted", "applicationId", sub.ApplicationID)

	c.draft = permit.DefaultDraft()
	c.step = 1
	c.errors = make(map[permit.Field]string)
	return sub, nil
}
