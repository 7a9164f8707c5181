package file

const (
	SelectFileByID = `
		SELECT f.id, f.uuid, u.uuid, u.name, u.email, f.name, f.extension, f.size_bytes, f.bucket, f.storage_key, f.created_at
		FROM files f
		JOIN users u ON u.id = f.owner_id
		WHERE f.uuid = $1
	`
	SelectOwnerFiles = `
		SELECT f.id, f.uuid, u.uuid, u.name, u.email, f.name, f.extension, f.size_bytes, f.bucket, f.storage_key, f.created_at
		FROM files f
		JOIN users u ON u.id = f.owner_id
		WHERE u.uuid = $1
		ORDER BY f.created_at DESC
	`
	// Inserts zero rows when the owner uuid does not resolve, which keeps
	// the owner-must-exist invariant inside the statement itself.
	InsertFile = `
		INSERT INTO files (owner_id, name, extension, size_bytes, bucket, storage_key)
		SELECT u.id, $2, $3, $4, $5, $6
		FROM users u
		WHERE u.uuid = $1
		RETURNING
		  id, uuid, name, extension, size_bytes, bucket, storage_key, created_at
	`
	DeleteFileByID = `
		DELETE FROM files f
		USING users u
		WHERE f.uuid = $1 AND u.id = f.owner_id
		RETURNING
		  f.id, f.uuid, u.uuid, u.name, u.email, f.name, f.extension, f.size_bytes, f.bucket, f.storage_key, f.created_at
	`
)
