package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

// SNSClient is the subset of *sns.Client used for push delivery
type SNSClient interface {
	CreatePlatformEndpoint(ctx context.Context, params *sns.CreatePlatformEndpointInput, optFns ...func(*sns.Options)) (*sns.CreatePlatformEndpointOutput, error)
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type PushService struct {
	repo        repository.PushRepositoryI
	sns         SNSClient
	platformARN string
}

// NewPushService accepts nil client or empty platformARN: registration then
// fails with ErrPushDisabled and notifications are dropped.
func NewPushService(pushRepo repository.PushRepositoryI, client SNSClient, platformARN string) *PushService {
	if pushRepo == nil {
		log.Fatal("provided nil pushRepo")
	}
	return &PushService{
		repo:        pushRepo,
		sns:         client,
		platformARN: platformARN,
	}
}

// NewSNSClient loads default AWS credentials for region.
func NewSNSClient(ctx context.Context, region string) (*sns.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.New("loading aws config error: " + err.Error())
	}
	return sns.NewFromConfig(cfg), nil
}

func (ps *PushService) enabled() bool {
	return ps.sns != nil && ps.platformARN != ""
}

func (ps *PushService) RegisterToken(ctx context.Context, phone string, req *PushTokenRequest) (*entity.PushEndpoint, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !ps.enabled() {
		return nil, errorvalues.ErrPushDisabled
	}
	out, err := ps.sns.CreatePlatformEndpoint(ctx, &sns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(ps.platformARN),
		Token:                  aws.String(req.Token),
	})
	if err != nil {
		return nil, errors.New("creating platform endpoint error: " + err.Error())
	}
	endpoint := &entity.PushEndpoint{
		PhoneNumber: phone,
		Platform:    req.Platform,
		TokenHash:   tokenHash(req.Token),
		EndpointARN: aws.ToString(out.EndpointArn),
	}
	err = ps.repo.Upsert(ctx, endpoint)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("push repository error: " + err.Error())
	}
	return endpoint, nil
}

// Notify publishes to every endpoint of phone and returns the first delivery error.
func (ps *PushService) Notify(ctx context.Context, phone, title, body string) error {
	if !ps.enabled() {
		return nil
	}
	endpoints, err := ps.repo.ListByPhone(ctx, phone)
	if err != nil {
		return errors.New("push repository error: " + err.Error())
	}
	if len(endpoints) == 0 {
		return nil
	}
	msg, err := pushMessage(title, body)
	if err != nil {
		return err
	}
	var firstErr error
	for _, e := range endpoints {
		_, err = ps.sns.Publish(ctx, &sns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(msg),
			TargetArn:        aws.String(e.EndpointARN),
		})
		if err != nil && firstErr == nil {
			firstErr = errors.New("publishing push error: " + err.Error())
		}
	}
	return firstErr
}

func pushMessage(title, body string) (string, error) {
	notification := map[string]any{
		"notification": map[string]string{
			"title": title,
			"body":  body,
		},
	}
	gcm, err := sonic.MarshalString(notification)
	if err != nil {
		return "", errors.New("marshalling push payload error: " + err.Error())
	}
	apns, err := sonic.MarshalString(map[string]any{
		"aps": map[string]any{
			"alert": map[string]string{"title": title, "body": body},
		},
	})
	if err != nil {
		return "", errors.New("marshalling push payload error: " + err.Error())
	}
	// SNS expects per-platform payloads as JSON strings
	return sonic.MarshalString(map[string]string{
		"default": body,
		"GCM":     gcm,
		"APNS":    apns,
	})
}

func tokenHash(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
