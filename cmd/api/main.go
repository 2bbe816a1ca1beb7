package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/library-api/access"
	"github.com/marcelsud/library-api/catalog"
	catalogpg "github.com/marcelsud/library-api/catalog/postgres"
	"github.com/marcelsud/library-api/config"
	"github.com/marcelsud/library-api/internal/auth"
	"github.com/marcelsud/library-api/internal/database"
	"github.com/marcelsud/library-api/internal/http/chi"
	"github.com/marcelsud/library-api/internal/user"
	userpg "github.com/marcelsud/library-api/internal/user/postgres"
	"github.com/marcelsud/library-api/lending"
	lendingpg "github.com/marcelsud/library-api/lending/postgres"
	"github.com/marcelsud/library-api/metrics"
)

const TIMEOUT = 30 * time.Second

/* “a porta de entrada e saída da minha aplicação”
* Porque a porta de entrada? É no arquivo main.go, que vai ser compilado para gerar o executável da aplicação,
* onde é feita toda a “amarração” dos demais pacotes.
* É nele onde iniciamos as dependências, fazemos as configurações e a invocação dos pacotes que desempenham a lógica de negócio.

* E porque ele é a porta de saída da aplicação?
* https://eltonminetto.dev/post/2022-07-06-error-handling-cli-applications-golang/
 */

/*
 * As importações devem ser feitas apenas em uma direção: para baixo. O aplicativo (api, migrate) importa camadas de negócios,
 * que importam a camada de armazenamento
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	db, err := database.OpenWithPoolConfig(
		cfg.PostgresConnectionString(),
		cfg.PostgresMaxOpenConns,
		cfg.PostgresMaxIdleConns,
		cfg.PostgresConnMaxLifeMinutes,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	// os três repositórios compartilham o mesmo pool
	defer db.Close()

	policy, err := loadPolicy(cfg.AccessPolicyFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	var collector metrics.Collector = metrics.NewPostgresCollector(db)
	if cfg.RedisAddr != "" {
		client, err := metrics.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			fmt.Println(err)
			return
		}
		cache := metrics.NewRedisCache(client, collector, cfg.StatsCacheTTL())
		defer cache.Close()
		collector = cache
	}
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ctx, chi.Services{
		Catalog:  catalog.NewService(catalogpg.NewRepository(db)),
		Lending:  lending.NewService(lendingpg.NewRepository(db), lending.NewCalculator(cfg.FinePerDay)),
		Users:    user.NewService(userpg.NewRepository(db)),
		Verifier: auth.NewVerifier(cfg.JWTSecret),
		Policy:   policy,
		Stats:    collector,
		Metrics:  exporter.ServeHTTP(),
	}, chi.Options{
		LogJSON:  cfg.LogJSON,
		LogLevel: cfg.LogLevel,
		Timeout:  cfg.RequestTimeout(),
	})
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

// loadPolicy falls back to the embedded policy when no file is configured
func loadPolicy(path string) (*access.Loader, error) {
	if path == "" {
		return access.Default()
	}
	l := access.NewLoader()
	if err := l.Load(path); err != nil {
		return nil, err
	}
	return l, nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
