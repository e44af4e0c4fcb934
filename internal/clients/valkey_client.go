package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
}

// ValkeyCache stores translations in Valkey.
type ValkeyCache struct {
	Client     valkey.Client
	retries    int
	retryDelay time.Duration
}

func NewValkeyCache(ctx context.Context, opts ValkeyOptions) (*ValkeyCache, error) {
	clientOpts := valkey.ClientOption{
		InitAddress: []string{
			opts.Address,
		},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", opts.Address))
	return &ValkeyCache{Client: client, retries: 3, retryDelay: VALKEY_RETRY_DELAY}, nil
}

func (vc *ValkeyCache) Get(ctx context.Context, key string) (string, bool, error) {
	res := vc.DoWithRetry(ctx, func() valkey.Completed {
		return vc.Client.B().Get().Key(key).Build()
	})
	value, err := res.ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (vc *ValkeyCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	completed := []valkey.Completed{
		vc.Client.B().Set().Key(key).Value(value).Build(),
		vc.Client.B().Expire().Key(key).Seconds(int64(max(ttl, time.Second) / time.Second)).Build(),
	}

	for _, res := range vc.Client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

func (vc *ValkeyCache) Close() {
	vc.Client.Close()
}

// DoWithRetry builds a fresh command per attempt; completed commands are
// recycled by the client once executed.
func (vc *ValkeyCache) DoWithRetry(ctx context.Context, build func() valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	_ = retryValkey(ctx, vc.retries, vc.retryDelay, func() error {
		result = vc.Client.Do(ctx, build())
		if err := result.Error(); err != nil && !valkey.IsValkeyNil(err) {
			return err
		}
		return nil
	})
	return result
}

// retryValkey runs attempt up to attempts times, waiting delay between
// failures. It stops early once ctx is done.
func retryValkey(ctx context.Context, attempts int, delay time.Duration, attempt func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = attempt(); err == nil {
			return nil
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
