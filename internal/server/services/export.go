package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/todocards/internal/server/config"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/google/uuid"
)

// ExportURLValidity is how long a presigned download link stays usable.
const ExportURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return s3.NewPresignClient(c).PresignGetObject(ctx, in, optFns...)
	}
)

type cardLister interface {
	ListCards(ctx context.Context, userID string) ([]*models.Card, error)
}

// ExportService snapshots a user's cards into object storage.
type ExportService struct {
	cards  cardLister
	config *sc.Config
	now    func() time.Time
}

func NewExportService(cards cardLister, cfg *sc.Config) *ExportService {
	return &ExportService{cards: cards, config: cfg, now: time.Now}
}

type exportTodo struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type exportCard struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"created_at"`
	Todos     []exportTodo `json:"todos"`
	Labels    []string     `json:"labels"`
}

type exportDocument struct {
	ExportedAt time.Time    `json:"exported_at"`
	Cards      []exportCard `json:"cards"`
}

// ExportKey names the object of one export.
func ExportKey(userID string, at time.Time) string {
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s.json", userID, at.Year(), at.Month(), at.Day(), uuid.New())
}

func (s *ExportService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export uploads a JSON snapshot of the user's cards and returns a
// presigned GET URL for it.
func (s *ExportService) Export(ctx context.Context, userID string) (string, error) {
	cards, err := s.cards.ListCards(ctx, userID)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	doc := exportDocument{ExportedAt: now, Cards: make([]exportCard, 0, len(cards))}
	for _, c := range cards {
		ec := exportCard{
			ID:        c.ID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			Todos:     make([]exportTodo, len(c.Todos)),
			Labels:    models.LabelNames(c.Labels),
		}
		for i, t := range c.Todos {
			ec.Todos[i] = exportTodo{Content: t.Content, Completed: t.Completed}
		}
		doc.Cards = append(doc.Cards, ec)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := ExportKey(userID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}

	req, err := presignGetObject(client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ExportURLValidity))
	if err != nil {
		return "", fmt.Errorf("presign export: %w", err)
	}
	return req.URL, nil
}
