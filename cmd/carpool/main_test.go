package main

import (
	"testing"
	"time"
)

func TestParseRegistration(t *testing.T) {
	in, violations, err := parseRegistration("aidos,secret123,Aidos K.,IT & Engineering,aidos@atu.edu.kz,+7 (700) 123-4567")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !violations.Empty() {
		t.Fatalf("unexpected violations %v", violations)
	}
	if in.Username != "aidos" || in.Email != "aidos@atu.edu.kz" || in.Phone != "+7 (700) 123-4567" {
		t.Fatalf("fields not mapped: %+v", in)
	}

	// Phone is optional.
	_, violations, err = parseRegistration("aidos,secret123,Aidos K.,IT,aidos@atu.edu.kz")
	if err != nil || !violations.Empty() {
		t.Fatalf("five-field form rejected: v=%v err=%v", violations, err)
	}
}

func TestParseRegistrationRejectsBadInput(t *testing.T) {
	if _, _, err := parseRegistration("onlyone,two"); err == nil {
		t.Fatalf("expected field-count error")
	}

	// Non-institutional email fails the form, not the parser.
	_, violations, err := parseRegistration("aidos,secret123,Aidos K.,IT,aidos@gmail.com")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if violations["email"] != "uni_email" {
		t.Fatalf("expected uni_email violation got %v", violations)
	}

	_, violations, err = parseRegistration("aidos,short,Aidos K.,IT,aidos@atu.edu.kz")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if violations["password"] != "min" {
		t.Fatalf("expected password min violation got %v", violations)
	}
}

func TestParseTripForm(t *testing.T) {
	in, driverID, violations, err := parseTripForm("2,ATU Main Campus,Samal-2,2026-09-01 18:00,3,200,After lectures")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !violations.Empty() {
		t.Fatalf("unexpected violations %v", violations)
	}
	if driverID != 2 || in.Origin != "ATU Main Campus" || in.Seats != 3 || in.Price != 200 {
		t.Fatalf("fields not mapped: driver=%d %+v", driverID, in)
	}
	want := time.Date(2026, 9, 1, 18, 0, 0, 0, time.Local)
	if !in.Date.Equal(want) {
		t.Fatalf("date parsed as %v", in.Date)
	}
}

func TestParseTripFormRejectsBadInput(t *testing.T) {
	if _, _, _, err := parseTripForm("2,Campus,Station,not-a-date,3,200"); err == nil {
		t.Fatalf("expected date error")
	}
	if _, _, _, err := parseTripForm("abc,Campus,Station,2026-09-01 18:00,3,200"); err == nil {
		t.Fatalf("expected driver id error")
	}

	_, _, violations, err := parseTripForm("2,Campus,Station,2026-09-01 18:00,9,200")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if violations["seats"] != "max" {
		t.Fatalf("expected seats max violation got %v", violations)
	}
}
