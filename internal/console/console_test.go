// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gradebook/internal/console"
	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/config"
	"github.com/taibuivan/gradebook/internal/session"
)

func newService() *session.Service {
	cfg := &config.Config{LoginAttemptBurst: 5, LoginAttemptInterval: time.Minute}
	return session.NewService(session.NewMemoryRepository(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// seeded returns a service with referent 12345 (password "pass") owning one
// evaluation of student Bob Ray in MAT, year group 4A.
func seeded(t *testing.T) *session.Service {
	t.Helper()
	ctx := context.Background()
	svc := newService()

	owner, err := svc.Register(ctx, gradebook.RegistrationInput{
		ID: "12345", FirstName: "Ann", LastName: "Lee", Password: "pass", Email: "a@b.com", Phone: "12345",
	})
	require.NoError(t, err)
	_, err = svc.CreateYearGroup(ctx, owner, gradebook.YearGroupInput{Year: "2023", Description: "4A"})
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, owner, gradebook.CourseInput{Abbreviation: "MAT", Description: "Mathematics"})
	require.NoError(t, err)
	_, err = svc.CreateStudent(ctx, owner, gradebook.StudentInput{
		MatriculationNumber: "1234567890", FirstName: "Bob", LastName: "Ray", Year: "4A",
	})
	require.NoError(t, err)
	_, err = svc.CreateEvaluation(ctx, owner, gradebook.EvaluationInput{
		ReferentID: "12345", YearGroup: "4A", MatriculationNumber: "1234567890",
		Course: "MAT", ExamDescription: "Test 1", ExamDate: "10.01.2024", ExamGrade: "2",
	})
	require.NoError(t, err)
	return svc
}

// run feeds one answer per line and returns everything the console printed.
func run(t *testing.T, svc *session.Service, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	err := console.New(in, &out, svc).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

/*
TestRun_FullSession registers, logs in, creates every entity, and prints a
certificate.
*/
func TestRun_FullSession(t *testing.T) {
	out := run(t, newService(),
		"R", "12345", "Ann", "Lee", "pass", "a@b.com", "12345",
		"L", "12345", "pass",
		"Y", "2023", "4A",
		"C", "MAT", "Mathematics",
		"S", "1234567890", "Bob", "Ray", "4A",
		"E", "", "4A", "1234567890", "MAT", "Test 1", "10.01.2024", "2",
		"2", "4A", "", "ray", "1234567890",
		"X",
	)

	assert.Contains(t, out, "Registered Ann Lee with ID 12345.")
	assert.Contains(t, out, "Logged in as Ann Lee (12345)")
	assert.Contains(t, out, "Year group 4A created.")
	assert.Contains(t, out, "Course MAT created.")
	assert.Contains(t, out, "Student Bob Ray created.")
	assert.Contains(t, out, "Evaluation Test 1 created.")
	assert.Contains(t, out, "Certificate of Bob Ray (4A)")
	assert.Regexp(t, `Mathematics\s+2\.00`, out)
	assert.Contains(t, out, "Goodbye!")
}

/*
TestRun_ResumesAtFailingField re-asks from the failing field onward.
*/
func TestRun_ResumesAtFailingField(t *testing.T) {
	out := run(t, newService(),
		"R", "12345", "Ann", "Lee", "pass", "not-an-email", "12345",
		"a@b.com", "12345",
		"X",
	)

	assert.Contains(t, out, "Error: E-Mail doesn't have a valid format!")
	assert.Contains(t, out, "Registered Ann Lee with ID 12345.")
	assert.Equal(t, 2, strings.Count(out, "E-Mail: "))
	assert.Equal(t, 1, strings.Count(out, "First name: "))
}

/*
TestRun_LoginFailure prints the error and returns to the top menu.
*/
func TestRun_LoginFailure(t *testing.T) {
	out := run(t, seeded(t), "L", "12345", "wrong", "X")

	assert.Contains(t, out, "Error: Invalid login credentials")
	assert.NotContains(t, out, "Logged in as")
}

/*
TestRun_StudentNeedsCatalog refuses the student form without a course.
*/
func TestRun_StudentNeedsCatalog(t *testing.T) {
	out := run(t, newService(),
		"R", "12345", "Ann", "Lee", "pass", "a@b.com", "12345",
		"L", "12345", "pass",
		"S",
		"X",
	)

	assert.Contains(t, out, "Create at least one year group and one course first!")
}

/*
TestRun_Analysis prints the rough average and one row per student.
*/
func TestRun_Analysis(t *testing.T) {
	out := run(t, seeded(t), "L", "12345", "pass", "1", "4A", "MAT", "X")

	assert.Contains(t, out, "Analysis of Mathematics in 4A")
	assert.Contains(t, out, "Rough average: 2.00")
	assert.Regexp(t, `Bob Ray\s+2\s+2\.00`, out)
}

/*
TestRun_Period accepts the default bounds and lists the evaluations.
*/
func TestRun_Period(t *testing.T) {
	out := run(t, seeded(t), "L", "12345", "pass", "3", "", "", "X")

	assert.Contains(t, out, "Evaluations exist from 10.01.2024 to 10.01.2024.")
	assert.Regexp(t, `10\.01\.2024\s+4A\s+MAT\s+Bob Ray\s+Test 1\s+2`, out)
}

/*
TestRun_PeriodOutOfBounds re-asks the first date.
*/
func TestRun_PeriodOutOfBounds(t *testing.T) {
	out := run(t, seeded(t), "L", "12345", "pass", "3", "01.01.2024", "", "", "", "X")

	assert.Contains(t, out, "Error: The date must be between 10.01.2024 and 10.01.2024!")
	assert.Equal(t, 2, strings.Count(out, "First date [10.01.2024]: "))
}

/*
TestRun_EndOfInput treats an exhausted reader as exit.
*/
func TestRun_EndOfInput(t *testing.T) {
	out := run(t, newService(), "R", "12345")

	assert.Contains(t, out, "Goodbye!")
}

/*
TestRun_Cancelled stops before reading when the context is done.
*/
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := console.New(strings.NewReader("X\n"), io.Discard, newService()).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
