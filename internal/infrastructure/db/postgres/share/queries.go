package share

const (
	SelectShare = `
		SELECT s.id, s.uuid, f.uuid, u.uuid, s.created_at
		FROM shares s
		JOIN files f ON f.id = s.file_id
		JOIN users u ON u.id = s.user_id
		WHERE f.uuid = $1 AND u.uuid = $2
	`
	// Inserts zero rows when either uuid does not resolve; a grant can only
	// reference an existing file and an existing user.
	InsertShare = `
		INSERT INTO shares (file_id, user_id)
		SELECT f.id, u.id
		FROM files f, users u
		WHERE f.uuid = $1 AND u.uuid = $2
		RETURNING
		  id, uuid, $1::uuid, $2::uuid, created_at
	`
	DeleteShareByPair = `
		DELETE FROM shares s
		USING files f, users u
		WHERE f.id = s.file_id AND u.id = s.user_id
		  AND f.uuid = $1 AND u.uuid = $2
		RETURNING
		  s.id, s.uuid, f.uuid, u.uuid, s.created_at
	`
	DeleteSharesByFile = `
		DELETE FROM shares s
		USING files f
		WHERE f.id = s.file_id AND f.uuid = $1
	`
	SelectSharedFiles = `
		SELECT f.id, f.uuid, o.uuid, o.name, o.email, f.name, f.extension, f.size_bytes, f.bucket, f.storage_key, f.created_at
		FROM shares s
		JOIN files f ON f.id = s.file_id
		JOIN users o ON o.id = f.owner_id
		JOIN users u ON u.id = s.user_id
		WHERE u.uuid = $1
		ORDER BY f.created_at DESC
	`
)
