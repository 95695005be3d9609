// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook

import (
	"slices"
	"strconv"

	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/platform/sec"
	"github.com/taibuivan/gradebook/internal/platform/validate"
)

// Referent is the teacher who registers, logs in, and owns every year group,
// course, student, and evaluation they create.
type Referent struct {
	id           string
	firstName    string
	lastName     string
	passwordHash string
	email        string
	phone        string

	yearGroups  []*YearGroup
	courses     []*Course
	students    []*Student
	evaluations []*Evaluation
}

// RegistrationInput holds the raw text of the registration form.
type RegistrationInput struct {
	ID        string
	FirstName string
	LastName  string
	Password  string
	Email     string
	Phone     string
}

// NewDraftReferent returns a referent with every field empty.
func NewDraftReferent() *Referent {
	return &Referent{}
}

// NewReferent builds a referent directly, without validation. The password is
// hashed; if hashing fails the referent can never log in.
func NewReferent(id, firstName, lastName, password, email, phone string) *Referent {
	hash, _ := sec.HashPassword(password)
	return &Referent{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		passwordHash: hash,
		email:        email,
		phone:        phone,
	}
}

// # Accessors

func (r *Referent) ID() string        { return r.id }
func (r *Referent) FirstName() string { return r.firstName }
func (r *Referent) LastName() string  { return r.lastName }
func (r *Referent) Email() string     { return r.email }
func (r *Referent) Phone() string     { return r.phone }

// FullName returns first and last name separated by a space.
func (r *Referent) FullName() string { return r.firstName + " " + r.lastName }

// YearGroups returns a copy of the owned year groups in creation order.
func (r *Referent) YearGroups() []*YearGroup { return slices.Clone(r.yearGroups) }

// Courses returns a copy of the owned courses in creation order.
func (r *Referent) Courses() []*Course { return slices.Clone(r.courses) }

// Students returns a copy of the owned students in creation order.
func (r *Referent) Students() []*Student { return slices.Clone(r.students) }

// Evaluations returns a copy of the owned evaluations in creation order.
func (r *Referent) Evaluations() []*Evaluation { return slices.Clone(r.evaluations) }

// Key returns the natural key, the ID.
func (r *Referent) Key() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Equal reports whether both referents have the same ID.
func (r *Referent) Equal(other *Referent) bool {
	return r != nil && other != nil && r.id == other.id
}

// IsMatchingPassword reports whether pwd is the referent's password.
func (r *Referent) IsMatchingPassword(pwd string) bool {
	return sec.CheckPasswordHash(pwd, r.passwordHash)
}

// # Setters

// SetID commits a five-digit ID between 10000 and 99999. Once a valid ID is
// set it cannot be replaced by a different one.
func (r *Referent) SetID(id string) error {
	if len(id) != ReferentIDLength {
		return apperr.Field(FieldID, "Length of the ID must be 5!")
	}
	if !validate.Digits(id) {
		return apperr.Field(FieldID, "ID must contain only digits!")
	}

	value, _ := strconv.Atoi(id)
	if err := validate.Range(FieldID, value, MinReferentID, MaxReferentID, "ID must contain 5 digits!"); err != nil {
		return err
	}

	if r.hasValidID() && r.id != id {
		return apperr.Field(FieldID, "The ID cannot be changed once set!")
	}

	r.id = id
	return nil
}

func (r *Referent) SetFirstName(firstName string) error {
	if err := validate.NotEmpty(FieldFirstName, firstName, "The first name cannot be empty!"); err != nil {
		return err
	}
	r.firstName = firstName
	return nil
}

func (r *Referent) SetLastName(lastName string) error {
	if err := validate.NotEmpty(FieldLastName, lastName, "The last name cannot be empty!"); err != nil {
		return err
	}
	r.lastName = lastName
	return nil
}

// SetPassword commits a password of at least four characters. Only its bcrypt
// hash is kept.
func (r *Referent) SetPassword(password string) error {
	err := (&validate.Validator{}).
		Check(validate.MinLen(FieldPassword, password, MinPasswordLength, "Password must contain at least 4 characters!")).
		Check(validate.MaxBytes(FieldPassword, password, sec.MaxPasswordBytes)).
		Err()
	if err != nil {
		return err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}

	r.passwordHash = hash
	return nil
}

func (r *Referent) SetEmail(email string) error {
	if err := validate.Email(FieldEmail, email, "E-Mail doesn't have a valid format!"); err != nil {
		return err
	}
	r.email = email
	return nil
}

func (r *Referent) SetPhone(phone string) error {
	if err := validate.Int64(FieldPhone, phone, "Phone number can only contain digits!"); err != nil {
		return err
	}
	r.phone = phone
	return nil
}

// Apply runs every registration setter in form order and returns the first
// failure. Fields before the failing one stay committed.
func (r *Referent) Apply(in RegistrationInput) error {
	return (&validate.Validator{}).
		Apply(func() error { return r.SetID(in.ID) }).
		Apply(func() error { return r.SetFirstName(in.FirstName) }).
		Apply(func() error { return r.SetLastName(in.LastName) }).
		Apply(func() error { return r.SetPassword(in.Password) }).
		Apply(func() error { return r.SetEmail(in.Email) }).
		Apply(func() error { return r.SetPhone(in.Phone) }).
		Err()
}

// # Owned Collections

// AddYearGroup appends yearGroup unless an equal one is already owned.
func (r *Referent) AddYearGroup(yearGroup *YearGroup) bool {
	if yearGroup == nil || slices.ContainsFunc(r.yearGroups, yearGroup.Equal) {
		return false
	}
	r.yearGroups = append(r.yearGroups, yearGroup)
	return true
}

// AddCourse appends course unless an equal one is already owned.
func (r *Referent) AddCourse(course *Course) bool {
	if course == nil || slices.ContainsFunc(r.courses, course.Equal) {
		return false
	}
	r.courses = append(r.courses, course)
	return true
}

// AddStudent appends student unless an equal one is already owned.
func (r *Referent) AddStudent(student *Student) bool {
	if student == nil || slices.ContainsFunc(r.students, student.Equal) {
		return false
	}
	r.students = append(r.students, student)
	return true
}

// AddEvaluation appends evaluation. Evaluations have no natural key, so
// nothing is ever rejected as a duplicate.
func (r *Referent) AddEvaluation(evaluation *Evaluation) bool {
	if evaluation == nil {
		return false
	}
	r.evaluations = append(r.evaluations, evaluation)
	return true
}

// hasValidID reports whether the current ID already passed validation.
func (r *Referent) hasValidID() bool {
	if len(r.id) != ReferentIDLength || !validate.Digits(r.id) {
		return false
	}
	value, _ := strconv.Atoi(r.id)
	return value >= MinReferentID && value <= MaxReferentID
}
