package envbind_test

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing/fstest"

	"github.com/dmitrymomot/envbind"
	"github.com/dmitrymomot/envbind/pkg/transform"
)

func ExampleBinder_Bind() {
	os.Setenv("EXAMPLE_HTTP_PORT", "8080")
	defer os.Unsetenv("EXAMPLE_HTTP_PORT")

	b := envbind.New()
	if err := b.Bind("api", "http_port", "EXAMPLE_HTTP_PORT", envbind.WithTransform(transform.Int)); err != nil {
		fmt.Println("bind failed:", err)
		return
	}

	port, _ := b.Get("api", "http_port")
	fmt.Printf("%v (%T)\n", port, port)
	// Output: 8080 (int)
}

func ExampleBinder_BindAll() {
	os.Setenv("EXAMPLE_DB_HOST", "db.internal")
	defer os.Unsetenv("EXAMPLE_DB_HOST")

	b := envbind.New()
	err := b.BindAll("billing",
		envbind.Decl{ConfigKey: "db_host", EnvKey: "EXAMPLE_DB_HOST"},
		envbind.Decl{ConfigKey: "db_pool", EnvKey: "EXAMPLE_DB_POOL", Default: "10", Transform: transform.Int},
	)
	if err != nil {
		fmt.Println("bind failed:", err)
		return
	}

	fmt.Println(b.MustGet("billing", "db_host"))
	fmt.Println(b.MustGet("billing", "db_pool"))
	// Output:
	// db.internal
	// 10
}

func ExampleBinder_ReloadFS() {
	os.Setenv("EXAMPLE_LOG_LEVEL", "info")
	defer os.Unsetenv("EXAMPLE_LOG_LEVEL")

	b := envbind.New(envbind.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := b.Bind("api", "log_level", "EXAMPLE_LOG_LEVEL", envbind.WithTransform(transform.Symbol)); err != nil {
		fmt.Println("bind failed:", err)
		return
	}

	before, _ := b.Get("api", "log_level")

	fsys := fstest.MapFS{
		"conf/env": {Data: []byte("export EXAMPLE_LOG_LEVEL='debug'\n")},
	}
	if err := b.ReloadFS("api", fsys, "conf/env"); err != nil {
		fmt.Println("reload failed:", err)
		return
	}

	after, _ := b.Get("api", "log_level")
	fmt.Println(before, "then", after)
	// Output: info then debug
}

func ExampleBinder_GetOr() {
	b := envbind.New()

	timeout := b.GetOr("api", "timeout_seconds", 30)
	fmt.Println(timeout)
	// Output: 30
}

func ExampleLoadStructInto() {
	os.Setenv("EXAMPLE_SMTP_HOST", "mail.internal")
	defer os.Unsetenv("EXAMPLE_SMTP_HOST")

	type SMTPConfig struct {
		Host string `env:"EXAMPLE_SMTP_HOST"`
		Port int    `env:"EXAMPLE_SMTP_PORT" envDefault:"587"`
	}

	b := envbind.New()

	var cfg SMTPConfig
	if err := envbind.LoadStructInto(b, "mailer", &cfg); err != nil {
		fmt.Println("load failed:", err)
		return
	}

	fmt.Printf("%s:%d\n", cfg.Host, cfg.Port)
	// Output: mail.internal:587
}
