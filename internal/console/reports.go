// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/query"
	"github.com/taibuivan/gradebook/internal/report"
	"github.com/taibuivan/gradebook/pkg/slice"
)

// # Report Screens

func (c *Console) analysis() error {
	owner := c.current
	if len(owner.YearGroups()) == 0 || len(owner.Courses()) == 0 {
		c.printf("Create at least one year group and one course first!\n")
		return nil
	}

	yearGroup, err := c.selectYearGroup(owner.YearGroups())
	if err != nil {
		return err
	}
	course, err := c.selectCourse(owner.Courses())
	if err != nil {
		return err
	}

	result := report.Analysis(owner, yearGroup, course)
	c.printf("\nAnalysis of %s in %s\n", course.Description(), yearGroup.Identifier())
	c.printf("Rough average: %s\n", formatAverage(result.RoughAverage, result.HasRoughAverage))

	if len(result.Rows) == 0 {
		c.printf("No evaluations yet.\n")
		return nil
	}

	w := c.table("Student", "Grades", "Average")
	for _, row := range result.Rows {
		grades := slice.Map(row.Evaluations, func(e *gradebook.Evaluation) string {
			return strconv.Itoa(e.ExamGrade())
		})
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", row.Student.FullName(), strings.Join(grades, " "), row.Average)
	}
	return w.Flush()
}

func (c *Console) certificate() error {
	owner := c.current
	if len(owner.YearGroups()) == 0 || len(owner.Students()) == 0 {
		c.printf("Create at least one student first!\n")
		return nil
	}

	yearGroup, err := c.selectYearGroup(owner.YearGroups())
	if err != nil {
		return err
	}
	students := query.FilterStudentsByYearGroup(yearGroup, owner.Students())
	if len(students) == 0 {
		c.printf("There are no students in %s.\n", yearGroup.Identifier())
		return nil
	}
	student, err := c.selectStudent(students)
	if err != nil {
		return err
	}

	rows := report.Certificate(owner, yearGroup, student)
	c.printf("\nCertificate of %s (%s)\n", student.FullName(), yearGroup.Identifier())
	if len(rows) == 0 {
		c.printf("No evaluations yet.\n")
		return nil
	}

	w := c.table("Course", "Average")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%.2f\n", row.Course.Description(), row.Average)
	}
	return w.Flush()
}

func (c *Console) period(ctx context.Context) error {
	evaluations := c.current.Evaluations()
	if len(evaluations) == 0 {
		c.printf("No evaluations yet.\n")
		return nil
	}

	minDate, maxDate := report.PeriodBounds(evaluations)
	c.printf("Evaluations exist from %s to %s.\n", gradebook.FormatDate(minDate), gradebook.FormatDate(maxDate))

	var firstRaw, lastRaw string
	fields := []field{
		{id: report.FieldFirstDate, prompt: "First date", value: &firstRaw,
			fallback: func() string { return gradebook.FormatDate(minDate) }},
		{id: report.FieldLastDate, prompt: "Last date", value: &lastRaw,
			fallback: func() string { return gradebook.FormatDate(maxDate) }},
	}

	ok, err := c.fill(ctx, fields, func() error {
		_, _, err := report.ParsePeriod(firstRaw, lastRaw, evaluations)
		return err
	})
	if err != nil || !ok {
		return err
	}

	first, last, _ := report.ParsePeriod(firstRaw, lastRaw, evaluations)
	w := c.table("Date", "Year group", "Course", "Student", "Exam", "Grade")
	for _, e := range report.Period(first, last, evaluations) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			e.ExamDate(), e.YearGroup().Key(), e.Course().Key(), e.Student().FullName(), e.ExamDescription(), e.ExamGrade())
	}
	return w.Flush()
}

// # Selection

func (c *Console) selectYearGroup(yearGroups []*gradebook.YearGroup) (*gradebook.YearGroup, error) {
	c.listYearGroups(yearGroups)
	for {
		identifier, err := c.ask("Year group")
		if err != nil {
			return nil, err
		}
		if yearGroup, ok := query.YearGroup(identifier, yearGroups); ok {
			return yearGroup, nil
		}
		c.printf("Error: This year group could not be found!\n")
	}
}

func (c *Console) selectCourse(courses []*gradebook.Course) (*gradebook.Course, error) {
	c.listCourses(courses)
	for {
		abbreviation, err := c.ask("Course")
		if err != nil {
			return nil, err
		}
		if course, ok := query.Course(abbreviation, courses); ok {
			return course, nil
		}
		c.printf("Error: This course could not be found!\n")
	}
}

// selectStudent narrows students by a name search, then asks for the
// matriculation number of one of the matches.
func (c *Console) selectStudent(students []*gradebook.Student) (*gradebook.Student, error) {
	for {
		firstName, err := c.ask("First name contains")
		if err != nil {
			return nil, err
		}
		lastName, err := c.ask("Last name contains")
		if err != nil {
			return nil, err
		}

		matches := query.FilterStudentsByName(firstName, lastName, students)
		if len(matches) == 0 {
			c.printf("No student matches.\n")
			continue
		}
		c.listStudents(matches)

		number, err := c.ask("Matriculation number")
		if err != nil {
			return nil, err
		}
		if student, ok := query.Student(number, matches); ok {
			return student, nil
		}
		c.printf("Error: This student could not be found!\n")
	}
}

func formatAverage(avg float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64)
}
