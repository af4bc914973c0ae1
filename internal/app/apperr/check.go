package apperr

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/nu-student-clubs/clubs-admin/internal/domain"
)

// Checker collects field validation failures into a single VALIDATION_ERROR.
//
//	var c apperr.Checker
//	c.Require("name", req.Name)
//	c.Email("email", req.Email)
//	if err := c.Err("invalid club"); err != nil { ... }
type Checker struct {
	details map[string]any
}

// Fail records a failure for field unless one is already recorded.
func (c *Checker) Fail(field, reason string) {
	if c.details == nil {
		c.details = make(map[string]any)
	}
	if _, ok := c.details[field]; ok {
		return
	}
	c.details[field] = reason
}

func (c *Checker) Require(field, v string) bool {
	if strings.TrimSpace(v) == "" {
		c.Fail(field, "must be non-empty")
		return false
	}
	return true
}

func (c *Checker) Email(field, v string) {
	if err := ValidateEmail(v); err != nil {
		c.Fail(field, err.Error())
	}
}

func (c *Checker) Positive(field string, v int64) {
	if v <= 0 {
		c.Fail(field, "must be a positive integer")
	}
}

// Date checks v is formatted as domain.DateLayout (YYYY-MM-DD).
func (c *Checker) Date(field, v string) {
	if _, err := time.Parse(domain.DateLayout, v); err != nil {
		c.Fail(field, "must be a date formatted YYYY-MM-DD")
	}
}

// Failed reports whether any failure was recorded.
func (c *Checker) Failed() bool { return len(c.details) > 0 }

// Err returns nil when nothing failed, or a VALIDATION_ERROR carrying every failure.
func (c *Checker) Err(message string) error {
	if !c.Failed() {
		return nil
	}
	return Validation(message, c.details)
}

// ValidateEmail accepts only bare addresses ("a@b.c"), not "Name <a@b.c>".
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("must be non-empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("must be a valid email address")
	}
	if addr.Address != email {
		return errors.New("must be a bare email address")
	}
	return nil
}
