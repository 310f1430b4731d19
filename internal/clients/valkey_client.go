// Package clients holds shared connection wrappers: Valkey for
// redelivery suppression and Kafka for the raw-content transport.
package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyInitMu   sync.Mutex
)

// ValkeyClient keeps a per-source set of already-processed item URLs so
// Kafka redeliveries are dropped cheaply. The database fingerprint index
// stays the dedup authority; this is only a fast path.
type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const processedKeyPrefix = "ingest:processed:"

// processedTTL keeps suppression sets a day; anything older falls through
// to the fingerprint check.
const processedTTL = 86400

func connect() (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("creating valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging valkey: %w", err)
	}
	return client, nil
}

// InitValkey connects the singleton client. Safe to call again after a
// failure; the established client is never replaced here.
func InitValkey() (*ValkeyClient, error) {
	valkeyInitMu.Lock()
	defer valkeyInitMu.Unlock()

	if valkeyInstance != nil {
		return valkeyInstance, nil
	}

	client, err := connect()
	if err != nil {
		return nil, err
	}
	slog.Info("[ValkeyClient] Successfully connected to valkey")
	valkeyInstance = &ValkeyClient{Client: client}
	return valkeyInstance, nil
}

func GetValkeyClient() *ValkeyClient {
	if valkeyInstance == nil {
		panic("[ValkeyClient] Valkey client is not initialized")
	}
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := connect()
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
	vc.Client = client
}

func processedKey(sourceName string) string {
	return processedKeyPrefix + strings.ToLower(sourceName)
}

// MarkProcessed records one item URL in the source's suppression set and
// refreshes the set's TTL.
func (vc *ValkeyClient) MarkProcessed(ctx context.Context, sourceName, itemURL string) error {
	key := processedKey(sourceName)
	completed := []valkey.Completed{
		vc.Client.B().Sadd().Key(key).Member(itemURL).Build(),
		vc.Client.B().Expire().Key(key).Seconds(processedTTL).Build(),
	}

	for _, res := range vc.DoMultiWithRetry(ctx, completed, 3) {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

// IsProcessed reports whether an item URL was already seen for a source.
// Any Valkey failure reads as "not processed": the fingerprint check still
// catches real duplicates.
func (vc *ValkeyClient) IsProcessed(ctx context.Context, sourceName, itemURL string) bool {
	res := vc.DoWithRetry(ctx,
		vc.Client.B().Sismember().Key(processedKey(sourceName)).Member(itemURL).Build(), 3)

	if err := res.Error(); isConnectionError(err) {
		vc.recreateClient()
	}

	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] DoMulti failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				if isConnectionError(r.Error()) {
					vc.recreateClient()
				}
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
