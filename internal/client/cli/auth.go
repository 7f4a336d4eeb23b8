package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/authservice/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts the user for a username, email and password and
// attempts to create a new account.
//
// On success it prints "Success!" and returns nil. The password byte
// slice is wiped before returning. Any I/O or service error is
// returned unchanged.
func (a *App) Signup(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Signup(ctx, userName, string(password), email); err != nil {
		log.Printf("Signup unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the returned token is kept in memory for subsequent
// whoami calls. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.token = session.Token
	a.userName = userName
	log.Printf("Login successful, token valid for %d seconds", session.ExpiresIn)
	return nil
}

// WhoAmI asks the server who the current token belongs to and prints
// the identity.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	id, err := a.api.WhoAmI(ctx, a.token)
	if err != nil {
		log.Printf("Request unsuccessful: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", id.Username, id.Email))
	return nil
}

// Logout forgets the in-memory session token.
func (a *App) Logout(_ context.Context) error {
	a.token = ""
	a.userName = ""
	return nil
}
