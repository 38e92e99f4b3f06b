package messaging

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"quality_server/core/port/out"
)

// commandRecorder captures issued commands without touching the network.
type commandRecorder struct {
	cmds []redis.Cmder
}

func (r *commandRecorder) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, nil
	}
}

func (r *commandRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		r.cmds = append(r.cmds, cmd)
		return nil
	}
}

func (r *commandRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		r.cmds = append(r.cmds, cmds...)
		return nil
	}
}

func (r *commandRecorder) find(name string) redis.Cmder {
	for _, cmd := range r.cmds {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

func newRecordedProducer() (*RedisProducer, *commandRecorder) {
	rec := &commandRecorder{}
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	client.AddHook(rec)
	return NewRedisProducer(client), rec
}

func TestSetBatchStatusExpiresAfter24Hours(t *testing.T) {
	p, rec := newRecordedProducer()

	err := p.SetBatchStatus(context.Background(), &out.BatchStatus{
		BatchID: "batch-1",
		Status:  "running",
		Total:   10,
	})
	if err != nil {
		t.Fatalf("SetBatchStatus: %v", err)
	}

	cmd := rec.find("expire")
	if cmd == nil {
		t.Fatal("no expire command issued")
	}
	args := cmd.Args()
	if got, want := args[1], "batch:status:batch-1"; got != want {
		t.Errorf("expire key = %v, want %v", got, want)
	}
	// go-redis encodes the TTL in whole seconds; a sub-second duration
	// would have been floored to 1 here.
	sec, ok := args[2].(int64)
	if !ok {
		t.Fatalf("expire ttl arg has type %T, want int64", args[2])
	}
	if want := int64((24 * time.Hour) / time.Second); sec != want {
		t.Errorf("expire ttl = %ds, want %ds", sec, want)
	}
}

func TestSetBatchStatusWritesAllFields(t *testing.T) {
	p, rec := newRecordedProducer()

	err := p.SetBatchStatus(context.Background(), &out.BatchStatus{
		BatchID:   "batch-2",
		Status:    "done",
		Total:     5,
		Sanitized: 3,
		Ignored:   2,
		Verified:  4,
	})
	if err != nil {
		t.Fatalf("SetBatchStatus: %v", err)
	}

	cmd := rec.find("hset")
	if cmd == nil {
		t.Fatal("no hset command issued")
	}
	args := cmd.Args()
	if got, want := args[1], "batch:status:batch-2"; got != want {
		t.Errorf("hset key = %v, want %v", got, want)
	}
	fields := make(map[string]bool)
	for i := 2; i+1 < len(args); i += 2 {
		if s, ok := args[i].(string); ok {
			fields[s] = true
		}
	}
	for _, f := range []string{"status", "total", "sanitized", "ignored", "verified"} {
		if !fields[f] {
			t.Errorf("hset missing field %q", f)
		}
	}
}

func TestPublishContactResultTargetsResultsStream(t *testing.T) {
	p, rec := newRecordedProducer()

	err := p.PublishContactResult(context.Background(), &out.ContactResultJob{
		BatchID: "batch-3",
	})
	if err != nil {
		t.Fatalf("PublishContactResult: %v", err)
	}

	cmd := rec.find("xadd")
	if cmd == nil {
		t.Fatal("no xadd command issued")
	}
	if got, want := cmd.Args()[1], StreamContactsResults; got != want {
		t.Errorf("xadd stream = %v, want %v", got, want)
	}
}
