package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homedrive-api/internal/application/services"
	domain "homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/user"
)

type FakeFileService struct {
	UploadFunc      func(ctx context.Context, authID string, in *multipart.FileHeader) (*domain.File, error)
	DownloadURLFunc func(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error)
	DeleteFunc      func(ctx context.Context, authID string, fileUUID uuid.UUID) error
	OwnFilesFunc    func(ctx context.Context, authID string, userUUID user.UUID) (domain.Files, error)
}

func (f *FakeFileService) Upload(ctx context.Context, authID string, in *multipart.FileHeader) (*domain.File, error) {
	if f.UploadFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadFunc(ctx, authID, in)
}
func (f *FakeFileService) DownloadURL(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error) {
	if f.DownloadURLFunc == nil {
		return "", errors.New("not used")
	}
	return f.DownloadURLFunc(ctx, authID, fileUUID)
}
func (f *FakeFileService) Delete(ctx context.Context, authID string, fileUUID uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, authID, fileUUID)
}
func (f *FakeFileService) OwnFiles(ctx context.Context, authID string, userUUID user.UUID) (domain.Files, error) {
	if f.OwnFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.OwnFilesFunc(ctx, authID, userUUID)
}

func doMultipartReq(t *testing.T, r *gin.Engine, path, fileName, content string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func someDomainFile(ownerUUID user.UUID) *domain.File {
	return &domain.File{
		UUID:       uuid.New(),
		OwnerUUID:  ownerUUID,
		Owner:      "Owner",
		Name:       "notes",
		Extension:  "txt",
		SizeBytes:  42,
		Bucket:     "uploads",
		StorageKey: uuid.New().String(),
	}
}

func TestFileController_UploadFileHandler(t *testing.T) {
	u := someDomainUser()

	t.Run("401 unauthenticated", func(t *testing.T) {
		r, j := newTestRouter(t)
		NewFileController(r, &FakeFileService{}, zap.NewNop(), j)

		rr := doMultipartReq(t, r, RouteFiles, "a.txt", "x", nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Not authenticated")
	})

	t.Run("400 missing file part", func(t *testing.T) {
		r, j := newTestRouter(t)
		NewFileController(r, &FakeFileService{}, zap.NewNop(), j)

		rr := doMultipartReq(t, r, RouteFiles, "", "", authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("413 empty file", func(t *testing.T) {
		r, j := newTestRouter(t)
		NewFileController(r, &FakeFileService{}, zap.NewNop(), j)

		rr := doMultipartReq(t, r, RouteFiles, "a.txt", "", authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("404 unknown user", func(t *testing.T) {
		r, j := newTestRouter(t)
		fs := &FakeFileService{
			UploadFunc: func(ctx context.Context, authID string, in *multipart.FileHeader) (*domain.File, error) {
				return nil, services.ErrUserNotFound
			},
		}
		NewFileController(r, fs, zap.NewNop(), j)

		rr := doMultipartReq(t, r, RouteFiles, "a.txt", "x", authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("500 service error", func(t *testing.T) {
		r, j := newTestRouter(t)
		fs := &FakeFileService{
			UploadFunc: func(ctx context.Context, authID string, in *multipart.FileHeader) (*domain.File, error) {
				return nil, errors.New("s3 down")
			},
		}
		NewFileController(r, fs, zap.NewNop(), j)

		rr := doMultipartReq(t, r, RouteFiles, "a.txt", "x", authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("201 success", func(t *testing.T) {
		r, j := newTestRouter(t)
		f := someDomainFile(u.UUID)
		fs := &FakeFileService{
			UploadFunc: func(ctx context.Context, authID string, in *multipart.FileHeader) (*domain.File, error) {
				assert.Equal(t, u.AuthID, authID)
				assert.Equal(t, "a.txt", in.Filename)
				return f, nil
			},
		}
		NewFileController(r, fs, zap.NewNop(), j)

		rr := doMultipartReq(t, r, RouteFiles, "a.txt", "hello", authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, f.UUID.String(), resp["uuid"])
		assert.Equal(t, "notes", resp["name"])
	})
}

func TestFileController_DownloadURLHandler(t *testing.T) {
	u := someDomainUser()
	fileID := uuid.New()

	tests := []struct {
		name       string
		fileID     string
		mockFS     func() *FakeFileService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid uuid",
			fileID:     "not-a-uuid",
			mockFS:     func() *FakeFileService { return &FakeFileService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "file_id must be a valid UUID",
		},
		{
			name:   "404 missing file",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DownloadURLFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error) {
						return "", services.ErrFileNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "file not found",
		},
		{
			name:   "403 no grant",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DownloadURLFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error) {
						return "", services.ErrNoAccess
					},
				}
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "200 success",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DownloadURLFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error) {
						assert.Equal(t, fileID, fileUUID)
						return "https://s3.example.com/key", nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j := newTestRouter(t)
			NewFileController(r, tt.mockFS(), zap.NewNop(), j)

			rr := doReq(t, r, http.MethodGet, RouteFiles+"/"+tt.fileID, nil, authHeaders(t, j, u.AuthID, u.Email))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "https://s3.example.com/key", resp["url"])
			}
			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestFileController_DeleteFileHandler(t *testing.T) {
	u := someDomainUser()
	fileID := uuid.New()

	tests := []struct {
		name       string
		fileID     string
		mockFS     func() *FakeFileService
		wantStatus int
	}{
		{
			name:       "400 invalid uuid",
			fileID:     "nope",
			mockFS:     func() *FakeFileService { return &FakeFileService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "404 missing file",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DeleteFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) error {
						return services.ErrFileNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "403 not the owner",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DeleteFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) error {
						return services.ErrNotOwner
					},
				}
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "500 service error",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DeleteFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) error {
						return errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "204 success",
			fileID: fileID.String(),
			mockFS: func() *FakeFileService {
				return &FakeFileService{
					DeleteFunc: func(ctx context.Context, authID string, fileUUID uuid.UUID) error {
						return nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j := newTestRouter(t)
			NewFileController(r, tt.mockFS(), zap.NewNop(), j)

			rr := doReq(t, r, http.MethodDelete, RouteFiles+"/"+tt.fileID, nil, authHeaders(t, j, u.AuthID, u.Email))
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestFileController_GetUserFilesHandler(t *testing.T) {
	u := someDomainUser()

	t.Run("400 invalid uuid", func(t *testing.T) {
		r, j := newTestRouter(t)
		NewFileController(r, &FakeFileService{}, zap.NewNop(), j)

		rr := doReq(t, r, http.MethodGet, RouteUsers+"/nope/files", nil, authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("403 someone else's listing", func(t *testing.T) {
		r, j := newTestRouter(t)
		fs := &FakeFileService{
			OwnFilesFunc: func(ctx context.Context, authID string, userUUID user.UUID) (domain.Files, error) {
				return nil, services.ErrNotOwner
			},
		}
		NewFileController(r, fs, zap.NewNop(), j)

		rr := doReq(t, r, http.MethodGet, RouteUsers+"/"+uuid.NewString()+"/files", nil, authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("200 success", func(t *testing.T) {
		r, j := newTestRouter(t)
		fs := &FakeFileService{
			OwnFilesFunc: func(ctx context.Context, authID string, userUUID user.UUID) (domain.Files, error) {
				assert.Equal(t, u.UUID, userUUID)
				return domain.Files{someDomainFile(u.UUID)}, nil
			},
		}
		NewFileController(r, fs, zap.NewNop(), j)

		rr := doReq(t, r, http.MethodGet, RouteUsers+"/"+u.UUID.String()+"/files", nil, authHeaders(t, j, u.AuthID, u.Email))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data []map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "notes", resp.Data[0]["name"])
	})
}
