package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autocare/platetrack/gen/ent"
	entimage "github.com/autocare/platetrack/gen/ent/sourceimage"
)

type SourceImageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceImage, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.SourceImage, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceImage, error)
	// UpsertByHash returns the existing row for a known content hash,
	// reporting deduplication via the bool.
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceImage, bool, error)
}

type sourceImageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSourceImageRepository(entc *ent.Client, logger *slog.Logger) SourceImageRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sourceImageRepo{ent: entc, logger: logger}
}

func (r *sourceImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceImage, error) {
	return r.ent.SourceImage.Get(ctx, id)
}

func (r *sourceImageRepo) GetByHash(ctx context.Context, hash []byte) (*ent.SourceImage, error) {
	row, err := r.ent.SourceImage.Query().
		Where(entimage.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *sourceImageRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceImage, error) {
	row, err := r.ent.SourceImage.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create source image", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *sourceImageRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SourceImage, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
