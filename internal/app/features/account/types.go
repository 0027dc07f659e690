// internal/app/features/account/types.go
package account

import "github.com/dalemusser/storemap/internal/app/system/viewdata"

type registerForm struct {
	Name            string `label:"Name" validate:"required,max=120"`
	Email           string `label:"Email" validate:"required,email"`
	Password        string `label:"Password" validate:"required,min=8"`
	PasswordConfirm string `label:"Confirm password" validate:"required,eqfield=Password"`
}

type accountForm struct {
	Name  string `label:"Name" validate:"required,max=120"`
	Email string `label:"Email" validate:"required,email"`
}

type resetForm struct {
	Password        string `label:"Password" validate:"required,min=8"`
	PasswordConfirm string `label:"Confirm password" validate:"required,eqfield=Password"`
}

type loginVM struct {
	viewdata.Base
	Email     string
	ReturnURL string
}

type registerVM struct {
	viewdata.Base
	Form       registerForm
	FormErrors []string
}

type accountVM struct {
	viewdata.Base
	Form       accountForm
	FormErrors []string
	Gravatar   string
}

type resetVM struct {
	viewdata.Base
	Token      string
	FormErrors []string
}
