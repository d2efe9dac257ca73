package preflight

import (
	"fmt"
	"os/user"

	"github.com/ajxudir/sysupdate/pkg/errors"
)

// SuperUser is the account name sysupdate refuses to run as.
const SuperUser = "root"

// CurrentUser returns the name of the account running the process.
// It is a variable so tests can impersonate other users.
var CurrentUser = func() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// CheckPrivileges fails when the process runs as SuperUser.
//
// Package managers that need elevated rights are invoked through sudo by
// the sections themselves; running everything as root would install
// user-level tools into root's home instead.
//
// Returns:
//   - error: *errors.PrivilegeError for the superuser, a lookup error, or nil
func CheckPrivileges() error {
	name, err := CurrentUser()
	if err != nil {
		return fmt.Errorf("determine current user: %w", err)
	}
	if name == SuperUser {
		return &errors.PrivilegeError{User: name}
	}
	return nil
}
