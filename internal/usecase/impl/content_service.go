package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/domain/service"
	"learnhub/internal/usecase"
	"learnhub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	documentRepo repository.DocumentRepository
	videoRepo    repository.VideoRepository
	storage      service.MediaStorage
	publisher    service.EventPublisher
	qrcode       service.QRCodeService
	logger       *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	DocumentRepo repository.DocumentRepository
	VideoRepo    repository.VideoRepository
	Storage      service.MediaStorage
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		documentRepo: params.DocumentRepo,
		videoRepo:    params.VideoRepo,
		storage:      params.Storage,
		publisher:    params.Publisher,
		qrcode:       params.QRCode,
		logger:       params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadDocument stores the file bytes and persists the metadata record.
// Callers have already passed the resource guard; the blob write happens
// before the metadata insert so a failed upload leaves no record behind.
func (srv *contentService) UploadDocument(ctx context.Context, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	srv.log(ctx).Info("Uploading document", slog.String("title", input.Title), slog.String("uploader", input.Uploader))

	result, err := srv.storage.Upload(ctx, input.File, input.Filename, service.MediaKindDocument)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload document to media storage")
	}

	doc := &entity.Document{
		Title:       input.Title,
		Description: input.Description,
		URL:         result.URL,
		Uploader:    input.Uploader,
		SizeMB:      roundMB(result.Size),
	}

	if err := srv.documentRepo.Create(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to persist document metadata")
	}

	srv.log(ctx).Info("Document stored",
		slog.String("url", doc.URL),
		slog.String("size", util.FormatBytes(result.Size)))

	srv.publishUploaded(ctx, service.MediaKindDocument, doc.Title, doc.URL, doc.Uploader)

	return doc, nil
}

// UploadVideo stores the file bytes and persists the metadata record.
func (srv *contentService) UploadVideo(ctx context.Context, input *usecase.UploadVideoInput) (*entity.Video, error) {
	srv.log(ctx).Info("Uploading video", slog.String("title", input.Title), slog.String("uploader", input.Uploader))

	result, err := srv.storage.Upload(ctx, input.File, input.Filename, service.MediaKindVideo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload video to media storage")
	}

	video := &entity.Video{
		Title:       input.Title,
		Description: input.Description,
		URL:         result.URL,
		Duration:    input.Duration,
		Uploader:    input.Uploader,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to persist video metadata")
	}

	srv.log(ctx).Info("Video stored",
		slog.String("url", video.URL),
		slog.String("duration", util.FormatDuration(time.Duration(video.Duration*float64(time.Second)))))

	srv.publishUploaded(ctx, service.MediaKindVideo, video.Title, video.URL, video.Uploader)

	return video, nil
}

// ListDocuments returns all document records, newest first.
func (srv *contentService) ListDocuments(ctx context.Context) ([]*entity.Document, error) {
	docs, err := srv.documentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return docs, nil
}

// ListVideos returns all video records, newest first.
func (srv *contentService) ListVideos(ctx context.Context) ([]*entity.Video, error) {
	videos, err := srv.videoRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return videos, nil
}

// GetVideoByURL resolves a single video for the watch page.
func (srv *contentService) GetVideoByURL(ctx context.Context, url string) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByURL(ctx, url)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no video for url")
		}

		return nil, errors.Wrap(err, "failed to find video by url")
	}

	return video, nil
}

// ShareQR renders a QR code PNG for a share link.
func (srv *contentService) ShareQR(url string) ([]byte, error) {
	png, err := srv.qrcode.GenerateShareQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// publishUploaded emits the content.uploaded event; publish failures are
// logged and swallowed so they never fail the upload itself.
func (srv *contentService) publishUploaded(ctx context.Context, kind service.MediaKind, title, url, uploader string) {
	event := &service.ContentUploadedEvent{
		Kind:       kind,
		Title:      title,
		URL:        url,
		Uploader:   uploader,
		UploadedAt: time.Now(),
	}

	if err := srv.publisher.PublishContentUploaded(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish content.uploaded event", slog.Any("error", err))
	}
}

// roundMB converts bytes to mebibytes, rounded to two decimals.
func roundMB(bytes int64) float64 {
	return math.Round(float64(bytes)/1048576*100) / 100
}
