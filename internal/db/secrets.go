package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type DBSecret struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Database string `json:"dbname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SecretProvider interface {
	GetSecret(ctx context.Context, name string) (DBSecret, error)
}

type cachedSecret struct {
	secret    DBSecret
	expiresAt time.Time
}

type AWSSecretProvider struct {
	region string
	ttl    time.Duration
	now    func() time.Time
	fetch  func(ctx context.Context, name string) (string, error)

	mu    sync.Mutex
	cache map[string]cachedSecret

	awsCfgOnce sync.Once
	awsCfg     aws.Config
	awsCfgErr  error
}

func NewAWSSecretProvider(region string, ttl time.Duration) *AWSSecretProvider {
	provider := &AWSSecretProvider{
		region: region,
		ttl:    ttl,
		now:    time.Now,
		cache:  make(map[string]cachedSecret),
	}
	provider.fetch = provider.fetchSecretString
	return provider
}

func (provider *AWSSecretProvider) GetSecret(ctx context.Context, name string) (DBSecret, error) {
	if secret, ok := provider.cached(name); ok {
		return secret, nil
	}

	raw, err := provider.fetch(ctx, name)
	if err != nil {
		return DBSecret{}, err
	}

	var secret DBSecret
	if err := json.Unmarshal([]byte(raw), &secret); err != nil {
		return DBSecret{}, fmt.Errorf("decode secret json: %w", err)
	}

	provider.mu.Lock()
	provider.cache[name] = cachedSecret{secret: secret, expiresAt: provider.now().Add(provider.ttl)}
	provider.mu.Unlock()

	return secret, nil
}

func (provider *AWSSecretProvider) cached(name string) (DBSecret, bool) {
	provider.mu.Lock()
	defer provider.mu.Unlock()

	entry, ok := provider.cache[name]
	if !ok {
		return DBSecret{}, false
	}
	if provider.now().After(entry.expiresAt) {
		delete(provider.cache, name)
		return DBSecret{}, false
	}
	return entry.secret, true
}

func (provider *AWSSecretProvider) fetchSecretString(ctx context.Context, name string) (string, error) {
	provider.awsCfgOnce.Do(func() {
		provider.awsCfg, provider.awsCfgErr = config.LoadDefaultConfig(ctx, config.WithRegion(provider.region))
	})
	if provider.awsCfgErr != nil {
		return "", fmt.Errorf("load aws config: %w", provider.awsCfgErr)
	}

	result, err := secretsmanager.NewFromConfig(provider.awsCfg).GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(name),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", fmt.Errorf("get secret value: %w", err)
	}
	if result.SecretString == nil {
		return "", errors.New("secret value missing string payload")
	}
	return *result.SecretString, nil
}
