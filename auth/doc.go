/*
Package auth provides credential hashing and session tokens.

# Passwords

Passwords are hashed with bcrypt and only the hash is ever stored:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, candidate)

# Session Tokens

Sessions are stateless HS256 JWTs carrying the user id and an expiry
(default one day). The token is the complete credential, verified
against a shared secret; there is no server-side session store.

	token, err := auth.GenerateToken(userID, secret, 24*time.Hour)
	userID, err := auth.ParseToken(token, secret)

ParseToken returns ErrInvalidToken for anything that doesn't verify:
bad signature, expired, malformed, or missing subject.
*/
package auth
