package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/rajat290/fitpro-connect/models"
)

type memberCardData struct {
	Name       string
	Email      string
	MemberID   string
	MemberDate string
	Goals      string
}

// GenerateMemberCardPDF renders the membership card template through
// headless Chrome and returns the PDF bytes.
func GenerateMemberCardPDF(user *models.User) ([]byte, error) {
	tmpl, err := template.ParseFiles("templates/member_card.html")
	if err != nil {
		return nil, err
	}

	goals := ""
	if user.FitnessGoals != nil {
		goals = *user.FitnessGoals
	}

	data := memberCardData{
		Name:       user.FullName(),
		Email:      user.Email,
		MemberID:   user.ID,
		MemberDate: user.CreatedAt.Format("02-Jan-2006"),
		Goals:      goals,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: 85.6mm 53.98mm; /* ID-1 wallet card */
			margin: 0;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 10px;
			margin: 0;
			padding: 0;
		}
		.card {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body><div class='card'>` + body.String() + `</div></body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "card_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(3.37).  // ID-1 width in inches
				WithPaperHeight(2.13). // ID-1 height in inches
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
