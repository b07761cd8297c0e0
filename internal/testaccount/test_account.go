package testaccount

import (
	"fmt"
	"os"
)

const (
	testURLEnvVar      = "GO_SYNOPHOTOS_TEST_URL"
	testAccountEnvVar  = "GO_SYNOPHOTOS_TEST_ACCOUNT"
	testPasswordEnvVar = "GO_SYNOPHOTOS_TEST_PASSWORD"
)

// Account is a real Synology Photos account used by the live tests.
type Account struct {
	URL      string
	Account  string
	Password string
}

// FromEnv gets the test account from the "GO_SYNOPHOTOS_TEST_URL",
// "GO_SYNOPHOTOS_TEST_ACCOUNT" and "GO_SYNOPHOTOS_TEST_PASSWORD" environment
// variables.
func FromEnv() (Account, error) {
	a := Account{
		URL:      os.Getenv(testURLEnvVar),
		Account:  os.Getenv(testAccountEnvVar),
		Password: os.Getenv(testPasswordEnvVar),
	}

	if a.URL == "" || a.Account == "" || a.Password == "" {
		return Account{}, fmt.Errorf("the environment variables %q, %q and %q must be set to configure the Synology Photos account used for testing", testURLEnvVar, testAccountEnvVar, testPasswordEnvVar)
	}
	return a, nil
}
