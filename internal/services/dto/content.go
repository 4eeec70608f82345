package dto

// HomeUpdateInput carries the multipart hero form. ProfileImage is nil when
// no new image was uploaded; OldProfileImage is the URL to replace.
type HomeUpdateInput struct {
	Name            string
	Title           string
	Description     string
	CvURL           string
	GithubURL       string
	LinkedinURL     string
	ProfileImage    *File
	OldProfileImage string
}

// AboutUpdateInput carries the multipart about form. ImageURL is the value
// submitted for the image field when no file was uploaded.
type AboutUpdateInput struct {
	Title        string
	Description  string
	Details      string
	BulletPoints []string
	ImageURL     string
	ImageFile    *File
}

// SettingsUpdateInput is a partial update: empty text fields keep their
// stored values. SocialLinks and SEO arrive as JSON blobs from the form.
type SettingsUpdateInput struct {
	WebsiteName        string
	WebsiteDescription string
	PrimaryColor       string
	SecondaryColor     string
	Email              string
	Phone              string
	Address            string
	FooterText         string
	SocialLinksJSON    string
	SEOJSON            string
	Logo               *File
	Favicon            *File
}
