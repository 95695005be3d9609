// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire program.

Categories:

  - Metadata: Application name and version printed in the banner and logs.
  - Logging: Attribute keys shared between the command and the console.
  - Events: Log message names emitted by the services.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

// # Metadata

const (
	AppName    = "gradebook"
	AppVersion = "0.1.0-dev"
)

// # Logging Attributes

const (
	FieldApp         = "app"
	FieldVersion     = "version"
	FieldEnvironment = "environment"
	FieldSessionID   = "session_id"
	FieldReferentID  = "referent_id"
	FieldError       = "error"
)

// # Events

const (
	EventReferentRegistered = "referent_registered"
	EventLoginSucceeded     = "login_succeeded"
	EventLoginFailed        = "login_failed"
	EventLoginThrottled     = "login_throttled"
	EventYearGroupCreated   = "year_group_created"
	EventCourseCreated      = "course_created"
	EventStudentCreated     = "student_created"
	EventEvaluationCreated  = "evaluation_created"
)
