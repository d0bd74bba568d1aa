package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/internal/repository"
	"lexiscreen_backend/internal/util"
	"lexiscreen_backend/pkg/logger"

	"go.uber.org/zap"
)

// ResultService records assignment submissions and serves the teacher
// dashboard.
type ResultService struct {
	ResultRepo *repository.ResultRepository
	Storage    *StorageService
}

func NewResultService(resultRepo *repository.ResultRepository, storage *StorageService) *ResultService {
	return &ResultService{
		ResultRepo: resultRepo,
		Storage:    storage,
	}
}

func (s *ResultService) Submit(result *model.Result) error {
	return s.ResultRepo.Create(result)
}

func (s *ResultService) ListForTeacher(page, limit int) ([]model.Result, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ResultRepo.FindAllWithRelations(page, limit)
}

func (s *ResultService) ListForStudent(studentID uint) ([]model.Result, error) {
	return s.ResultRepo.FindByStudent(studentID)
}

// AttachAudio stores a read-aloud clip next to an existing reading
// result. The clip is staged locally so its duration can be probed
// before upload.
func (s *ResultService) AttachAudio(ctx context.Context, resultID uint, studentID uint, file *multipart.FileHeader) (*model.Result, error) {
	result, err := s.ResultRepo.FindByID(resultID)
	if err != nil {
		return nil, util.ErrResultNotFound
	}
	if result.StudentID != studentID {
		return nil, util.ErrPermissionDenied
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeAudio, "video/webm", util.MimeOctetStream})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	staged, err := os.CreateTemp("", "clip-*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(staged.Name())

	if _, err := staged.ReadFrom(src); err != nil {
		staged.Close()
		return nil, err
	}
	staged.Close()

	var seconds float64
	if info, err := util.ProbeAudio(staged.Name()); err == nil {
		seconds = info.Duration
	} else {
		logger.Log.Warn("audio probe failed", zap.Error(err))
	}

	objectName := fmt.Sprintf("audio/%d/%d-%d%s",
		studentID, resultID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := s.Storage.UploadFile(ctx, objectName, staged.Name(), mimeType)
	if err != nil {
		return nil, err
	}

	result.AudioURL = url
	result.AudioSeconds = seconds
	if err := s.ResultRepo.Update(result); err != nil {
		return nil, err
	}
	return result, nil
}
