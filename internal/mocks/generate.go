package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RemoteFetcher --dir ../usecase --output usecase --outpkg usecasemock --filename remote_fetcher_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LiveStatsSource --dir ../usecase --output usecase --outpkg usecasemock --filename live_stats_source_mock.go
