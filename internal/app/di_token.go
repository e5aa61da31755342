package app

import (
	"context"
	"fmt"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	tokenHTTP "github.com/allisson/tokens/internal/token/http"
	tokenRepository "github.com/allisson/tokens/internal/token/repository"
	tokenService "github.com/allisson/tokens/internal/token/service"
	tokenUseCase "github.com/allisson/tokens/internal/token/usecase"
)

// RecordRepository returns the encryption record repository.
func (c *Container) RecordRepository() (tokenUseCase.RecordRepository, error) {
	c.recordRepositoryInit.Do(func() {
		repo, err := c.initRecordRepository()
		if err != nil {
			c.initErrors["recordRepository"] = err
			return
		}
		c.recordRepository = repo
	})
	if storedErr, exists := c.initErrors["recordRepository"]; exists {
		return nil, storedErr
	}
	return c.recordRepository, nil
}

// Cipher returns the cipher configured by CIPHER_MODE.
func (c *Container) Cipher() (tokenService.Cipher, error) {
	c.cipherInit.Do(func() {
		cipher, err := tokenService.NewCipher(tokenDomain.Mode(c.config.CipherMode))
		if err != nil {
			c.initErrors["cipher"] = fmt.Errorf("failed to create cipher %q: %w", c.config.CipherMode, err)
			return
		}
		c.cipher = cipher
	})
	if storedErr, exists := c.initErrors["cipher"]; exists {
		return nil, storedErr
	}
	return c.cipher, nil
}

// KeyIssuer returns the random key issuer.
func (c *Container) KeyIssuer() tokenService.KeyIssuer {
	c.keyIssuerInit.Do(func() {
		c.keyIssuer = tokenService.NewKeyIssuer()
	})
	return c.keyIssuer
}

// KeyProtector returns the key protector. With KMS_KEY_URI set the stored key
// material is wrapped by the configured keeper; otherwise it is stored as
// plain hex.
func (c *Container) KeyProtector() (tokenService.KeyProtector, error) {
	c.keyProtectorInit.Do(func() {
		if c.config.KMSKeyURI == "" {
			c.keyProtector = tokenService.NewHexKeyProtector()
			return
		}
		protector, err := tokenService.NewKMSKeyProtector(context.Background(), c.config.KMSKeyURI)
		if err != nil {
			c.initErrors["keyProtector"] = err
			return
		}
		c.keyProtector = protector
	})
	if storedErr, exists := c.initErrors["keyProtector"]; exists {
		return nil, storedErr
	}
	return c.keyProtector, nil
}

// TokenUseCase returns the token use case, decorated with metrics when enabled.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		useCase, err := c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}
		c.tokenUC = useCase
	})
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUC, nil
}

// TokenHandler returns the token HTTP handler.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	c.tokenHandlerInit.Do(func() {
		useCase, err := c.TokenUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = err
			return
		}
		c.tokenHandler = tokenHTTP.NewTokenHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// initRecordRepository creates the record repository for the configured driver.
func (c *Container) initRecordRepository() (tokenUseCase.RecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return tokenRepository.NewMySQLRecordRepository(db), nil
	case "postgres":
		return tokenRepository.NewPostgreSQLRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (tokenUseCase.TokenUseCase, error) {
	recordRepo, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for token use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for token use case: %w", err)
	}

	protector, err := c.KeyProtector()
	if err != nil {
		return nil, fmt.Errorf("failed to get key protector for token use case: %w", err)
	}

	useCase := tokenUseCase.NewTokenUseCase(recordRepo, cipher, c.KeyIssuer(), protector)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		useCase = tokenUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
