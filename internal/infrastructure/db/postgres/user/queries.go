package user

const (
	SelectUserByAuthID = `
		SELECT id, uuid, auth_id, email, name, created_at, updated_at
		FROM users
		WHERE auth_id = $1
	`
	SelectUserByEmail = `
		SELECT id, uuid, auth_id, email, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (auth_id, email)
		VALUES ($1, $2)
		RETURNING
		  id, uuid, auth_id, email, name, created_at, updated_at
	`
	UpdateUserNameByAuthID = `
		UPDATE users
		SET name = $1,
		    updated_at = now()
		WHERE auth_id = $2
		RETURNING
		  id, uuid, auth_id, email, name, created_at, updated_at
	`
)
