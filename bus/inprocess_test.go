package bus

import (
	"encoding/json"
	"testing"
	"time"
)

func TestInProcessFanout(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	b := NewInProcess(done)
	if err := b.DeclareExchange("logs"); err != nil {
		t.Fatalf("DeclareExchange: %v", err)
	}
	subA, err := b.Subscribe("logs")
	if err != nil {
		t.Fatalf("Subscribe a: %v", err)
	}
	subB, err := b.Subscribe("logs")
	if err != nil {
		t.Fatalf("Subscribe b: %v", err)
	}
	b.Start()

	if err := b.Publish("logs", map[string]string{"message": "hello"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	for _, sub := range []<-chan []byte{subA, subB} {
		select {
		case msg := <-sub:
			var decoded map[string]string
			if err := json.Unmarshal(msg, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if decoded["message"] != "hello" {
				t.Fatalf("unexpected payload: %v", decoded)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for fanned-out message")
		}
	}
}

func TestPublishUndeclaredExchange(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	b := NewInProcess(done)
	if err := b.Publish("nope", struct{}{}); err == nil {
		t.Fatal("expected error publishing to an undeclared exchange")
	}
}

func TestSubscribeAfterStart(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	b := NewInProcess(done)
	_ = b.DeclareExchange("logs")
	b.Start()
	if _, err := b.Subscribe("logs"); err == nil {
		t.Fatal("expected error subscribing after Start")
	}
}
