package mcp

import (
	"context"
	"encoding/json"

	mcplib "github.com/felixgeelhaar/mcp-go"
)

func (s *Server) registerResources() {
	s.mcpServer.Resource("ward://policy").
		Name("ward://policy").
		Description("The raw .ward policy for the server root directory").
		MimeType("text/plain").
		Handler(func(_ context.Context, _ string, _ map[string]string) (*mcplib.ResourceContent, error) {
			info, err := s.wardSvc.Info(s.root)
			if err != nil {
				return nil, mcpErr("Unable to read the ward policy.")
			}
			text := info.Content
			if !info.Protected {
				text = "No ward planted in this directory."
			}
			return &mcplib.ResourceContent{
				URI:      "ward://policy",
				MimeType: "text/plain",
				Text:     text,
			}, nil
		})

	s.mcpServer.Resource("ward://status").
		Name("ward://status").
		Description("Ward status of the server root directory").
		MimeType("application/json").
		Handler(func(_ context.Context, _ string, _ map[string]string) (*mcplib.ResourceContent, error) {
			report, err := s.wardSvc.Status(s.root)
			if err != nil {
				return nil, mcpErr("Unable to read ward status.")
			}
			data, err := json.Marshal(report)
			if err != nil {
				return nil, err
			}
			return &mcplib.ResourceContent{
				URI:      "ward://status",
				MimeType: "application/json",
				Text:     string(data),
			}, nil
		})
}
