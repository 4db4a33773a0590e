package client

import (
	"context"
	"fmt"
	"regexp"

	"delivery-service/internal/entities"
)

type Client struct {
	repository       Repository
	lookup           Lookup
	telephonePattern *regexp.Regexp
}

func New(repository Repository, lookup Lookup, telephonePattern *regexp.Regexp) *Client {
	return &Client{
		repository:       repository,
		lookup:           lookup,
		telephonePattern: telephonePattern,
	}
}

func (s *Client) CreateClient(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	if err := validateClient(clientModify, s.telephonePattern); err != nil {
		return nil, err
	}

	clientModify.ID = nil
	client, err := s.repository.Create(ctx, clientModify)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

// UpdateClient полностью заменяет данные клиента.
func (s *Client) UpdateClient(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	if err := validateClient(clientModify, s.telephonePattern); err != nil {
		return nil, err
	}

	if clientModify.ID == nil {
		return nil, fmt.Errorf("update client: missing id")
	}

	if _, err := s.lookup.Client(ctx, *clientModify.ID); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	client, err := s.repository.Update(ctx, clientModify)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

func (s *Client) GetClient(ctx context.Context, id int64) (*entities.Client, error) {
	client, err := s.lookup.Client(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return client, nil
}

func (s *Client) GetClients(ctx context.Context) ([]entities.Client, error) {
	clients, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}

	return clients, nil
}

func (s *Client) DeleteClient(ctx context.Context, id int64) error {
	if _, err := s.lookup.Client(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
