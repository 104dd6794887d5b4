//go:generate mockgen -source=../basket_repository.go -destination=./mock_basket_repository.go -package=mocks
//go:generate mockgen -source=../basket_cache.go      -destination=./mock_basket_cache.go      -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../basket_service.go    -destination=./mock_basket_service.go    -package=mocks
//go:generate mockgen -source=../inventory.go         -destination=./mock_inventory.go         -package=mocks
//go:generate mockgen -source=../promotion_catalog.go -destination=./mock_promotion_catalog.go -package=mocks
//go:generate mockgen -source=../message_consumer.go  -destination=./mock_message_consumer.go  -package=mocks

package mocks
