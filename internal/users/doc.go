// Package users implements the user credential model: the User entity, its
// three construction paths (email+password, phone+access code, restore from
// an exported CSV row), field normalization and the salted password checks.
//
// Users are built through a Factory, which carries the hasher, the access
// code source and the Notifier that delivers codes to phones.
package users
