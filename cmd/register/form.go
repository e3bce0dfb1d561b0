package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/divine-encounter/event-registration/checkout"
	"github.com/divine-encounter/event-registration/registration"
)

const requiredFieldMark = "  ! This field is required"

type formPrompter struct {
	in  *checkout.LineReader
	out io.Writer
}

func newFormPrompter(in *checkout.LineReader, out io.Writer) *formPrompter {
	return &formPrompter{in: in, out: out}
}

// Prompt asks for every field of the signup form. Like the page, a blank
// required field is flagged but not blocked; the submit-time validation
// decides.
func (p *formPrompter) Prompt(ctx context.Context) (registration.Form, error) {
	var form registration.Form
	var err error

	form.FullName, err = p.field(ctx, "Full name", true)
	if err != nil {
		return form, err
	}

	form.Email, err = p.field(ctx, "Email", true)
	if err != nil {
		return form, err
	}

	phone, err := p.field(ctx, "Phone", true)
	if err != nil {
		return form, err
	}
	form.Phone = registration.SanitizePhoneInput(phone)

	form.AttendanceMode, err = p.attendanceMode(ctx)
	if err != nil {
		return form, err
	}

	form.Church, err = p.field(ctx, "Church (optional)", false)
	if err != nil {
		return form, err
	}

	form.SpecialNeeds, err = p.field(ctx, "Special needs (optional)", false)
	if err != nil {
		return form, err
	}

	form.Newsletter, err = p.Confirm(ctx, "Subscribe to the newsletter?")
	if err != nil {
		return form, err
	}

	form.TermsAccepted, err = p.Confirm(ctx, "I agree to the terms and conditions")
	if err != nil {
		return form, err
	}

	return form, nil
}

func (p *formPrompter) field(ctx context.Context, label string, required bool) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	value, err := p.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	if registration.FieldMarkedInvalid(registration.FIELD_BLUR, required, value, false) {
		fmt.Fprintln(p.out, requiredFieldMark)
	}

	return value, nil
}

func (p *formPrompter) attendanceMode(ctx context.Context) (registration.AttendanceMode, error) {
	fmt.Fprintf(p.out, "Attendance mode [1] In person  [2] Virtual: ")

	value, err := p.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	switch strings.TrimSpace(strings.ToLower(value)) {
	case "1", string(registration.IN_PERSON):
		return registration.IN_PERSON, nil
	case "2", string(registration.VIRTUAL):
		return registration.VIRTUAL, nil
	default:
		fmt.Fprintln(p.out, requiredFieldMark)
		return "", nil
	}
}

func (p *formPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	value, err := p.in.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(strings.ToLower(value)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
