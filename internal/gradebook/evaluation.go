// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gradebook

import (
	"time"

	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/platform/validate"
)

// Evaluation is one graded exam. It references, but does not own, a referent,
// a year group, a student, and a course.
//
// Evaluations have no natural key: two evaluations are the same only if they
// are the same pointer.
type Evaluation struct {
	referent  *Referent
	yearGroup *YearGroup
	student   *Student
	course    *Course

	examDescription string
	examDate        string
	examGrade       int
}

// EvaluationInput holds the raw text of the evaluation form. The reference
// fields carry natural keys: referent ID, year group description, student
// matriculation number, and course abbreviation.
type EvaluationInput struct {
	ReferentID          string
	YearGroup           string
	MatriculationNumber string
	Course              string
	ExamDescription     string
	ExamDate            string
	ExamGrade           string
}

// EvaluationSources are the collections the reference fields resolve against.
type EvaluationSources struct {
	Referents  []*Referent
	YearGroups []*YearGroup
	Students   []*Student
	Courses    []*Course
}

// NewDraftEvaluation returns an evaluation with no references and grade 0.
func NewDraftEvaluation() *Evaluation {
	return &Evaluation{}
}

// NewEvaluation builds an evaluation directly, without validation.
func NewEvaluation(referent *Referent, yearGroup *YearGroup, student *Student, course *Course, examDescription, examDate string, examGrade int) *Evaluation {
	return &Evaluation{
		referent:        referent,
		yearGroup:       yearGroup,
		student:         student,
		course:          course,
		examDescription: examDescription,
		examDate:        examDate,
		examGrade:       examGrade,
	}
}

func (e *Evaluation) Referent() *Referent     { return e.referent }
func (e *Evaluation) YearGroup() *YearGroup   { return e.yearGroup }
func (e *Evaluation) Student() *Student       { return e.student }
func (e *Evaluation) Course() *Course         { return e.course }
func (e *Evaluation) ExamDescription() string { return e.examDescription }
func (e *Evaluation) ExamDate() string        { return e.examDate }
func (e *Evaluation) ExamGrade() int          { return e.examGrade }

// Date returns the parsed exam date. The boolean is false for a draft.
func (e *Evaluation) Date() (time.Time, bool) {
	return ParseDate(e.examDate)
}

// # Reference Setters

// SetReferent resolves id among referents and assigns the match.
func (e *Evaluation) SetReferent(id string, referents []*Referent) error {
	referent, ok := lookup(id, referents)
	if !ok {
		return apperr.Field(FieldReferent, "A referent with this ID could not be found!")
	}
	e.AssignReferent(referent)
	return nil
}

// SetYearGroup resolves identifier among yearGroups and assigns the match.
func (e *Evaluation) SetYearGroup(identifier string, yearGroups []*YearGroup) error {
	yearGroup, ok := lookup(identifier, yearGroups)
	if !ok {
		return apperr.Field(FieldYearGroup, "This year group could not be found!")
	}
	e.AssignYearGroup(yearGroup)
	return nil
}

// SetStudent resolves matriculationNumber among students and assigns the match.
func (e *Evaluation) SetStudent(matriculationNumber string, students []*Student) error {
	student, ok := lookup(matriculationNumber, students)
	if !ok {
		return apperr.Field(FieldStudent, "This student could not be found!")
	}
	e.AssignStudent(student)
	return nil
}

// SetCourse resolves abbreviation among courses and assigns the match.
func (e *Evaluation) SetCourse(abbreviation string, courses []*Course) error {
	course, ok := lookup(abbreviation, courses)
	if !ok {
		return apperr.Field(FieldCourse, "This course could not be found!")
	}
	e.AssignCourse(course)
	return nil
}

func (e *Evaluation) AssignReferent(referent *Referent)    { e.referent = referent }
func (e *Evaluation) AssignYearGroup(yearGroup *YearGroup) { e.yearGroup = yearGroup }
func (e *Evaluation) AssignStudent(student *Student)       { e.student = student }
func (e *Evaluation) AssignCourse(course *Course)          { e.course = course }

// # Value Setters

func (e *Evaluation) SetExamDescription(examDescription string) error {
	err := validate.MinLen(FieldExamDescription, examDescription, MinDescriptionLength,
		"The exam description must contain at least 2 letters!")
	if err != nil {
		return err
	}
	e.examDescription = examDescription
	return nil
}

// SetExamDate commits a date in the strict "DD.MM.YYYY" format.
func (e *Evaluation) SetExamDate(examDate string) error {
	if err := validate.Custom(FieldExamDate, !IsValidDateFormat(examDate), "The date must have the format DD.MM.YYYY!"); err != nil {
		return err
	}
	e.examDate = examDate
	return nil
}

// SetExamGrade parses raw and commits it through [Evaluation.SetExamGradeValue].
func (e *Evaluation) SetExamGrade(raw string) error {
	grade, err := validate.Int(FieldExamGrade, raw, "The exam grade must be a number between 1 and 5!")
	if err != nil {
		return err
	}
	return e.SetExamGradeValue(grade)
}

// SetExamGradeValue commits a grade between 1 (best) and 5 (worst).
func (e *Evaluation) SetExamGradeValue(grade int) error {
	if err := validate.Range(FieldExamGrade, grade, MinGrade, MaxGrade, "The exam grade must be a number between 1 and 5!"); err != nil {
		return err
	}
	e.examGrade = grade
	return nil
}

// # Form Handling

// Apply runs the evaluation form setters in order: referent, year group,
// student, course, description, date, grade. It stops at the first failure.
func (e *Evaluation) Apply(in EvaluationInput, src EvaluationSources) error {
	return (&validate.Validator{}).
		Apply(func() error { return e.SetReferent(in.ReferentID, src.Referents) }).
		Apply(func() error { return e.SetYearGroup(in.YearGroup, src.YearGroups) }).
		Apply(func() error { return e.SetStudent(in.MatriculationNumber, src.Students) }).
		Apply(func() error { return e.SetCourse(in.Course, src.Courses) }).
		Apply(func() error { return e.SetExamDescription(in.ExamDescription) }).
		Apply(func() error { return e.SetExamDate(in.ExamDate) }).
		Apply(func() error { return e.SetExamGrade(in.ExamGrade) }).
		Err()
}

// Complete reports the first reference that is still missing. An evaluation
// must be complete before it is saved.
func (e *Evaluation) Complete() error {
	return (&validate.Validator{}).
		Check(validate.Custom(FieldReferent, e.referent == nil, "The referent is missing!")).
		Check(validate.Custom(FieldYearGroup, e.yearGroup == nil, "The year group is missing!")).
		Check(validate.Custom(FieldStudent, e.student == nil, "The student is missing!")).
		Check(validate.Custom(FieldCourse, e.course == nil, "The course is missing!")).
		Err()
}
