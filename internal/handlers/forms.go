package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type loginForm struct {
	Username   string `form:"username" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}

type registerForm struct {
	Username  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

type careerGoalForm struct {
	CareerGoal string `form:"career_goal" binding:"required,max=140"`
}

type taskForm struct {
	Title       string    `form:"title" binding:"required"`
	Description string    `form:"description"`
	DueDate     time.Time `form:"due_date" time_format:"2006-01-02"`
}

type progressForm struct {
	Skill string `form:"skill" binding:"required"`
	Level int    `form:"level" binding:"required,min=1,max=10"`
	Notes string `form:"notes"`
}

type profileForm struct {
	Username   string `form:"username" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	CareerGoal string `form:"career_goal" binding:"max=140"`
	AboutMe    string `form:"about_me" binding:"max=140"`
}

type mentorForm struct {
	Message string `form:"message"`
}

// fieldErrors turns a binding error into per-field messages keyed by the
// lowercased field name, so templates can re-render the form with the
// message next to the offending input.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid input."
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Invalid email address."
		case "eqfield":
			out[field] = "Field must be equal to password."
		case "max":
			if fe.Kind() == reflect.String {
				out[field] = fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
			} else {
				out[field] = fmt.Sprintf("Value must be at most %s.", fe.Param())
			}
		case "min":
			if fe.Kind() == reflect.String {
				out[field] = fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
			} else {
				out[field] = fmt.Sprintf("Value must be at least %s.", fe.Param())
			}
		default:
			out[field] = "Invalid value."
		}
	}
	return out
}
