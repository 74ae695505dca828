package invoke_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/invoke"
	"github.com/jonwraymond/invoke/conform"
	"github.com/jonwraymond/invoke/instrument"
	"github.com/jonwraymond/invoke/observe"
)

func ExampleExecute() {
	eng, err := invoke.New(invoke.WithLogger(observe.NopLogger()))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	attempts := 0
	profile, err := invoke.Execute(context.Background(), eng, invoke.Unit[string]{
		Fn: func(ctx context.Context) (string, error) {
			attempts++
			if attempts < 2 {
				return "", errors.New("transient failure")
			}
			return "profile-42", nil
		},
		Conform:    &conform.Config{RetryCount: 2, MaxWaitTime: 100},
		Instrument: instrument.NewDescriptor("userprofile", "byProfileId"),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(profile, "after", attempts, "attempts")
	// Output:
	// profile-42 after 2 attempts
}

func ExampleExecute_exhaustion() {
	eng, err := invoke.New(invoke.WithLogger(observe.NopLogger()))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	_, err = invoke.Execute(context.Background(), eng, invoke.Unit[string]{
		Fn: func(ctx context.Context) (string, error) {
			return "", errors.New("service unavailable")
		},
		Conform: &conform.Config{RetryCount: 2},
	})

	var invErr *invoke.Error
	if errors.As(err, &invErr) {
		fmt.Println("attempts:", invErr.Attempts)
		fmt.Println("cause:", invErr.Cause)
	}
	// Output:
	// attempts: 2
	// cause: service unavailable
}

func ExampleNew_withObserver() {
	ctx := context.Background()

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: "billing",
		Version:     "1.0.0",
		Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "none"},
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer func() {
		_ = obs.Shutdown(ctx)
	}()

	eng, err := invoke.New(invoke.WithObserver(obs))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	total, err := invoke.Execute(ctx, eng, invoke.Unit[int]{
		Fn: func(ctx context.Context) (int, error) {
			return 1200, nil
		},
		Instrument: instrument.NewDescriptor("billing", "monthlyTotal"),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(total)
	// Output:
	// 1200
}

func ExampleDo() {
	value, err := invoke.Do(context.Background(), invoke.Unit[int]{
		Fn: func(ctx context.Context) (int, error) {
			return 21 * 2, nil
		},
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(value)
	// Output:
	// 42
}
