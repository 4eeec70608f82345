package models

// HomeData is the hero-section singleton.
type HomeData struct {
	BaseModel    `bson:",inline"`
	Name         string `bson:"name" json:"name"`
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description,omitempty" json:"description"`
	CvURL        string `bson:"cvUrl,omitempty" json:"cvUrl"`
	GithubURL    string `bson:"githubUrl,omitempty" json:"githubUrl"`
	LinkedinURL  string `bson:"linkedinUrl,omitempty" json:"linkedinUrl"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage"`
}

// About is the about-section singleton.
type About struct {
	BaseModel    `bson:",inline"`
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	Image        string   `bson:"image,omitempty" json:"image"`
	BulletPoints []string `bson:"bulletPoints,omitempty" json:"bulletPoints"`
	Details      string   `bson:"details,omitempty" json:"details"`
}

// SocialLinks groups the site-wide social profile URLs.
type SocialLinks struct {
	Github   string `bson:"github,omitempty" json:"github"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin"`
	Facebook string `bson:"facebook,omitempty" json:"facebook"`
	Youtube  string `bson:"youtube,omitempty" json:"youtube"`
}

// SEO holds the meta tags for the public site.
type SEO struct {
	Title       string `bson:"title,omitempty" json:"title"`
	Description string `bson:"description,omitempty" json:"description"`
	Keywords    string `bson:"keywords,omitempty" json:"keywords"`
}

// WebsiteSettings is the site-wide configuration singleton.
type WebsiteSettings struct {
	BaseModel          `bson:",inline"`
	WebsiteName        string      `bson:"websiteName" json:"websiteName"`
	WebsiteDescription string      `bson:"websiteDescription,omitempty" json:"websiteDescription"`
	Logo               string      `bson:"logo,omitempty" json:"logo"`
	Favicon            string      `bson:"favicon,omitempty" json:"favicon"`
	PrimaryColor       string      `bson:"primaryColor,omitempty" json:"primaryColor"`
	SecondaryColor     string      `bson:"secondaryColor,omitempty" json:"secondaryColor"`
	FooterText         string      `bson:"footerText,omitempty" json:"footerText"`
	SocialLinks        SocialLinks `bson:"socialLinks,omitempty" json:"socialLinks"`
	ContactNumber      string      `bson:"contactNumber,omitempty" json:"contactNumber"`
	Address            string      `bson:"address,omitempty" json:"address"`
	Email              string      `bson:"email,omitempty" json:"email"`
	SEO                SEO         `bson:"seo,omitempty" json:"seo"`
}

// DefaultWebsiteSettings returns the values used when the singleton is
// created lazily on first read.
func DefaultWebsiteSettings() WebsiteSettings {
	return WebsiteSettings{
		WebsiteName:    "My Portfolio",
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#1e40af",
		FooterText:     "© 2024 All rights reserved",
	}
}

// DefaultHomeData is the placeholder payload served before the singleton
// has been written.
func DefaultHomeData() HomeData {
	return HomeData{
		Name:        "John Doe",
		Title:       "Full Stack Developer",
		Description: "Passionate about building modern web apps.",
		CvURL:       "#",
		GithubURL:   "https://github.com/",
		LinkedinURL: "https://linkedin.com/",
	}
}
