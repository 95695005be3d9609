// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/session"
)

// # Account Screens

func (c *Console) register(ctx context.Context) error {
	suggested, err := c.service.SuggestID(ctx)
	if err != nil {
		c.report(ctx, err)
		return nil
	}

	var in gradebook.RegistrationInput
	fields := []field{
		{id: gradebook.FieldID, prompt: "ID", value: &in.ID, fallback: func() string { return suggested }},
		{id: gradebook.FieldFirstName, prompt: "First name", value: &in.FirstName},
		{id: gradebook.FieldLastName, prompt: "Last name", value: &in.LastName},
		{id: gradebook.FieldPassword, prompt: "Password", value: &in.Password},
		{id: gradebook.FieldEmail, prompt: "E-Mail", value: &in.Email},
		{id: gradebook.FieldPhone, prompt: "Phone", value: &in.Phone},
	}

	var referent *gradebook.Referent
	ok, err := c.fill(ctx, fields, func() (err error) {
		referent, err = c.service.Register(ctx, in)
		return err
	})
	if err != nil || !ok {
		return err
	}
	c.printf("Registered %s with ID %s.\n", referent.FullName(), referent.ID())
	return nil
}

func (c *Console) login(ctx context.Context) error {
	var id, password string
	fields := []field{
		{id: gradebook.FieldID, prompt: "ID", value: &id},
		{id: gradebook.FieldPassword, prompt: "Password", value: &password},
	}

	var referent *gradebook.Referent
	ok, err := c.fill(ctx, fields, func() (err error) {
		referent, err = c.service.Login(ctx, id, password)
		return err
	})
	if err != nil || !ok {
		return err
	}
	c.current = referent
	return nil
}

// # Creation Screens

func (c *Console) createYearGroup(ctx context.Context) error {
	var in gradebook.YearGroupInput
	fields := []field{
		{id: gradebook.FieldYear, prompt: "Year", value: &in.Year},
		{id: gradebook.FieldDescription, prompt: "Description", value: &in.Description},
	}

	ok, err := c.fill(ctx, fields, func() error {
		_, err := c.service.CreateYearGroup(ctx, c.current, in)
		return err
	})
	if ok {
		c.printf("Year group %s created.\n", in.Description)
	}
	return err
}

func (c *Console) createCourse(ctx context.Context) error {
	var in gradebook.CourseInput
	fields := []field{
		{id: gradebook.FieldAbbreviation, prompt: "Abbreviation", value: &in.Abbreviation},
		{id: gradebook.FieldDescription, prompt: "Description", value: &in.Description},
	}

	ok, err := c.fill(ctx, fields, func() error {
		_, err := c.service.CreateCourse(ctx, c.current, in)
		return err
	})
	if ok {
		c.printf("Course %s created.\n", in.Abbreviation)
	}
	return err
}

func (c *Console) createStudent(ctx context.Context) error {
	if !session.CanCreateStudent(c.current) {
		c.printf("Create at least one year group and one course first!\n")
		return nil
	}

	var in gradebook.StudentInput
	fields := []field{
		{id: gradebook.FieldMatriculationNumber, prompt: "Matriculation number", value: &in.MatriculationNumber},
		{id: gradebook.FieldFirstName, prompt: "First name", value: &in.FirstName},
		{id: gradebook.FieldLastName, prompt: "Last name", value: &in.LastName},
		{id: gradebook.FieldYear, prompt: "Year group", value: &in.Year,
			show: func() { c.listYearGroups(c.current.YearGroups()) }},
	}

	ok, err := c.fill(ctx, fields, func() error {
		_, err := c.service.CreateStudent(ctx, c.current, in)
		return err
	})
	if ok {
		c.printf("Student %s %s created.\n", in.FirstName, in.LastName)
	}
	return err
}

func (c *Console) createEvaluation(ctx context.Context) error {
	owner := c.current
	if len(owner.Students()) == 0 {
		c.printf("Create at least one student first!\n")
		return nil
	}

	var in gradebook.EvaluationInput
	showStudents := func() {
		src, err := c.service.EvaluationSources(ctx, owner, in.YearGroup)
		if err != nil {
			c.report(ctx, err)
			return
		}
		c.listStudents(src.Students)
	}

	fields := []field{
		{id: gradebook.FieldReferent, prompt: "Referent ID", value: &in.ReferentID,
			fallback: owner.ID},
		{id: gradebook.FieldYearGroup, prompt: "Year group", value: &in.YearGroup,
			show: func() { c.listYearGroups(owner.YearGroups()) }},
		{id: gradebook.FieldStudent, prompt: "Matriculation number", value: &in.MatriculationNumber,
			show: showStudents},
		{id: gradebook.FieldCourse, prompt: "Course", value: &in.Course,
			show: func() { c.listCourses(owner.Courses()) }},
		{id: gradebook.FieldExamDescription, prompt: "Exam description", value: &in.ExamDescription},
		{id: gradebook.FieldExamDate, prompt: "Exam date (DD.MM.YYYY)", value: &in.ExamDate,
			fallback: func() string { return gradebook.FormatDate(gradebook.Today()) }},
		{id: gradebook.FieldExamGrade, prompt: "Grade (1-5)", value: &in.ExamGrade},
	}

	ok, err := c.fill(ctx, fields, func() error {
		_, err := c.service.CreateEvaluation(ctx, owner, in)
		return err
	})
	if ok {
		c.printf("Evaluation %s created.\n", in.ExamDescription)
	}
	return err
}

// # Listings

func (c *Console) listYearGroups(yearGroups []*gradebook.YearGroup) {
	w := c.table("Year group", "Year")
	for _, y := range yearGroups {
		fmt.Fprintf(w, "%s\t%d\n", y.Identifier(), y.Year())
	}
	w.Flush()
}

func (c *Console) listCourses(courses []*gradebook.Course) {
	w := c.table("Course", "Description")
	for _, course := range courses {
		fmt.Fprintf(w, "%s\t%s\n", course.Abbreviation(), course.Description())
	}
	w.Flush()
}

func (c *Console) listStudents(students []*gradebook.Student) {
	w := c.table("Matriculation number", "Name", "Year group")
	for _, s := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.MatriculationNumber(), s.FullName(), s.Year().Key())
	}
	w.Flush()
}

// table returns a tab-aligned writer with the header already written.
func (c *Console) table(headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)
	return w
}
