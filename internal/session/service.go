// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package session implements the use cases of the console: registration,
// login, and creation of every entity a referent owns.
//
// # Architecture
//
// The [Service] orchestrates the gradebook entities and the [Repository].
// It knows nothing about the console; screens pass raw form input in and get
// entities or [apperr.AppError] values back.
package session

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/platform/config"
	"github.com/taibuivan/gradebook/internal/platform/constants"
	"github.com/taibuivan/gradebook/internal/platform/ctxutil"
	"github.com/taibuivan/gradebook/internal/query"
)

var errNilReferent = errors.New("session: referent is nil")

// suggestAttempts bounds the random draws of [Service.SuggestID] before it
// falls back to a linear scan.
const suggestAttempts = 64

// Service implements the grade book use cases.
//
// # Concurrency
//
// Service is driven by the single console goroutine and is not safe for
// concurrent use.
type Service struct {
	repository Repository
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewService constructs a [Service]. Login attempts are throttled by a token
// bucket of cfg.LoginAttemptBurst tokens, refilled one per
// cfg.LoginAttemptInterval.
func NewService(repo Repository, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		limiter:    rate.NewLimiter(rate.Every(cfg.LoginAttemptInterval), cfg.LoginAttemptBurst),
		logger:     logger,
	}
}

// # Accounts

// SuggestID returns a random five-digit ID that no referent uses yet, or ""
// when every ID is taken.
func (service *Service) SuggestID(ctx context.Context) (string, error) {
	span := gradebook.MaxReferentID - gradebook.MinReferentID + 1

	for range suggestAttempts {
		id := formatID(gradebook.MinReferentID + rand.IntN(span))
		taken, err := service.repository.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}

	for value := gradebook.MinReferentID; value <= gradebook.MaxReferentID; value++ {
		id := formatID(value)
		taken, err := service.repository.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", nil
}

// Register validates the registration form and stores the new referent.
//
// # Returns
//   - The registered [*gradebook.Referent].
//   - The first failing field as a VALIDATION_ERROR.
//   - [apperr.Conflict] on [gradebook.FieldID] if the ID is already taken.
func (service *Service) Register(ctx context.Context, in gradebook.RegistrationInput) (*gradebook.Referent, error) {
	// ── 1. Validation ─────────────────────────────────────────────────────

	referent := gradebook.NewDraftReferent()
	if err := referent.Apply(in); err != nil {
		return nil, err
	}

	// ── 2. Persistence ────────────────────────────────────────────────────

	if err := service.repository.Create(ctx, referent); err != nil {
		return nil, err
	}

	service.log(ctx).InfoContext(ctx, constants.EventReferentRegistered,
		slog.String(constants.FieldReferentID, referent.ID()),
	)
	return referent, nil
}

// Login returns the referent whose ID and password match.
//
// # Throttling
//
// Every failed attempt consumes a token. With the bucket empty, even correct
// credentials are refused with TOO_MANY_ATTEMPTS until a token is refilled.
func (service *Service) Login(ctx context.Context, id, password string) (*gradebook.Referent, error) {
	// ── 1. Throttle ───────────────────────────────────────────────────────

	if service.limiter.Tokens() < 1 {
		reservation := service.limiter.Reserve()
		wait := reservation.Delay()
		reservation.Cancel()

		service.log(ctx).WarnContext(ctx, constants.EventLoginThrottled,
			slog.String(constants.FieldReferentID, id),
			slog.Duration("retry_after", wait),
		)
		return nil, apperr.TooManyAttempts(int(math.Ceil(wait.Seconds())))
	}

	// ── 2. Credentials ────────────────────────────────────────────────────

	referent, err := service.repository.FindByID(ctx, id)
	if err != nil || !referent.IsMatchingPassword(password) {
		service.limiter.Allow()
		service.log(ctx).WarnContext(ctx, constants.EventLoginFailed,
			slog.String(constants.FieldReferentID, id),
		)
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	service.log(ctx).InfoContext(ctx, constants.EventLoginSucceeded,
		slog.String(constants.FieldReferentID, id),
	)
	return referent, nil
}

// Referents returns every registered referent in registration order.
func (service *Service) Referents(ctx context.Context) ([]*gradebook.Referent, error) {
	return service.repository.List(ctx)
}

// # Owned Entities

// CreateYearGroup validates the form and attaches the year group to owner.
// A year group with the same description is a CONFLICT.
func (service *Service) CreateYearGroup(ctx context.Context, owner *gradebook.Referent, in gradebook.YearGroupInput) (*gradebook.YearGroup, error) {
	if owner == nil {
		return nil, apperr.Internal(errNilReferent)
	}

	yearGroup := gradebook.NewDraftYearGroup()
	if err := yearGroup.Apply(in); err != nil {
		return nil, err
	}
	if !owner.AddYearGroup(yearGroup) {
		return nil, apperr.ConflictField(gradebook.FieldDescription, "This year group already exists!")
	}

	service.log(ctx).InfoContext(ctx, constants.EventYearGroupCreated,
		slog.String(constants.FieldReferentID, owner.ID()),
		slog.String("year_group", yearGroup.Identifier()),
		slog.Int("year", yearGroup.Year()),
	)
	return yearGroup, nil
}

// CreateCourse validates the form and attaches the course to owner.
// A course with the same abbreviation is a CONFLICT.
func (service *Service) CreateCourse(ctx context.Context, owner *gradebook.Referent, in gradebook.CourseInput) (*gradebook.Course, error) {
	if owner == nil {
		return nil, apperr.Internal(errNilReferent)
	}

	course := gradebook.NewDraftCourse()
	if err := course.Apply(in); err != nil {
		return nil, err
	}
	if !owner.AddCourse(course) {
		return nil, apperr.ConflictField(gradebook.FieldAbbreviation, "This course already exists!")
	}

	service.log(ctx).InfoContext(ctx, constants.EventCourseCreated,
		slog.String(constants.FieldReferentID, owner.ID()),
		slog.String("course", course.Abbreviation()),
	)
	return course, nil
}

// CanCreateStudent reports whether owner has the year group and course a
// student needs.
func CanCreateStudent(owner *gradebook.Referent) bool {
	return owner != nil && len(owner.YearGroups()) > 0 && len(owner.Courses()) > 0
}

// CreateStudent validates the form and attaches the student to owner. The
// year group is resolved among the owner's year groups.
//
// # Preconditions
//
// The owner needs at least one year group and one course.
func (service *Service) CreateStudent(ctx context.Context, owner *gradebook.Referent, in gradebook.StudentInput) (*gradebook.Student, error) {
	if owner == nil {
		return nil, apperr.Internal(errNilReferent)
	}
	if !CanCreateStudent(owner) {
		return nil, apperr.ValidationError("Create at least one year group and one course first!")
	}

	student := gradebook.NewDraftStudent()
	if err := student.Apply(in, owner.YearGroups()); err != nil {
		return nil, err
	}
	if !owner.AddStudent(student) {
		return nil, apperr.ConflictField(gradebook.FieldMatriculationNumber, "A student with this matriculation number already exists!")
	}

	service.log(ctx).InfoContext(ctx, constants.EventStudentCreated,
		slog.String(constants.FieldReferentID, owner.ID()),
		slog.String("year_group", student.Year().Identifier()),
	)
	return student, nil
}

// EvaluationSources returns what the evaluation form of owner resolves
// against. The referent is any registered one; the year group and course come
// from owner; the student list is narrowed to the chosen year group when that
// resolves.
func (service *Service) EvaluationSources(ctx context.Context, owner *gradebook.Referent, yearGroup string) (gradebook.EvaluationSources, error) {
	if owner == nil {
		return gradebook.EvaluationSources{}, apperr.Internal(errNilReferent)
	}

	referents, err := service.repository.List(ctx)
	if err != nil {
		return gradebook.EvaluationSources{}, err
	}

	students := owner.Students()
	if group, ok := query.YearGroup(yearGroup, owner.YearGroups()); ok {
		students = query.FilterStudentsByYearGroup(group, students)
	}

	return gradebook.EvaluationSources{
		Referents:  referents,
		YearGroups: owner.YearGroups(),
		Students:   students,
		Courses:    owner.Courses(),
	}, nil
}

// CreateEvaluation validates the form and attaches the evaluation to owner.
func (service *Service) CreateEvaluation(ctx context.Context, owner *gradebook.Referent, in gradebook.EvaluationInput) (*gradebook.Evaluation, error) {
	src, err := service.EvaluationSources(ctx, owner, in.YearGroup)
	if err != nil {
		return nil, err
	}

	evaluation := gradebook.NewDraftEvaluation()
	if err := evaluation.Apply(in, src); err != nil {
		return nil, err
	}
	if err := evaluation.Complete(); err != nil {
		return nil, err
	}
	owner.AddEvaluation(evaluation)

	service.log(ctx).InfoContext(ctx, constants.EventEvaluationCreated,
		slog.String(constants.FieldReferentID, owner.ID()),
		slog.String("course", evaluation.Course().Abbreviation()),
		slog.Int("grade", evaluation.ExamGrade()),
	)
	return evaluation, nil
}

// # Helpers

// log returns the service logger tagged with the console session, if any.
func (service *Service) log(ctx context.Context) *slog.Logger {
	if id := ctxutil.GetSessionID(ctx); id != "" {
		return service.logger.With(slog.String(constants.FieldSessionID, id))
	}
	return service.logger
}

func formatID(value int) string {
	return strconv.Itoa(value)
}
