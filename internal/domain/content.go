package domain

import "time"

// ContentType é o tipo de conteúdo de marketing gerado por IA
type ContentType string

const (
	ContentTypeEmails     ContentType = "emails"
	ContentTypeWhatsApp   ContentType = "whatsapp"
	ContentTypeInstagram  ContentType = "instagram"
	ContentTypeStories    ContentType = "stories"
	ContentTypeAds        ContentType = "ads"
	ContentTypeCopyPagina ContentType = "copy_pagina"
	ContentTypeScripts    ContentType = "scripts"
)

// GeneratedContent é uma copy gerada pela IA para um lançamento
type GeneratedContent struct {
	ID              string      `json:"id"`
	LaunchID        string      `json:"launch_id"`
	Type            ContentType `json:"type"`
	Subtype         string      `json:"subtype"`
	Content         string      `json:"content"`
	IsApproved      bool        `json:"is_approved"`
	CommunicationID *string     `json:"communication_id"`
	CreatedAt       time.Time   `json:"created_at"`
}

// GenerateContentRequest pede a geração de uma copy
type GenerateContentRequest struct {
	Type               ContentType `json:"type"`
	Subtype            string      `json:"subtype"`
	CustomInstructions string      `json:"custom_instructions"`
}

// UpdateContentRequest aprova uma copy e opcionalmente a vincula a uma
// ação do cronograma
type UpdateContentRequest struct {
	ContentID       string  `json:"content_id"`
	CommunicationID *string `json:"communication_id"`
	IsApproved      *bool   `json:"is_approved"`
}

// LaunchContext é o recorte do lançamento enviado no prompt de geração
type LaunchContext struct {
	Name          string  `json:"name"`
	Niche         string  `json:"niche"`
	Expert        string  `json:"expert"`
	BigIdea       string  `json:"big_idea"`
	Narrative     string  `json:"narrative"`
	Theme         string  `json:"theme"`
	TicketPrice   float64 `json:"ticket_price"`
	ProductName   string  `json:"product_name"`
	ProductPrice  float64 `json:"product_price"`
	EventDate     string  `json:"event_date"`
	EventPlatform string  `json:"event_platform"`
}

// ContentSubtype descreve um subtipo de template de conteúdo
type ContentSubtype struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ContentTemplate agrupa os subtipos disponíveis de um tipo de conteúdo
type ContentTemplate struct {
	Type        ContentType      `json:"type"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Subtypes    []ContentSubtype `json:"subtypes"`
}
