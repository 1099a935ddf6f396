package models

import "github.com/pkg/errors"

var ErrUnknownPage = errors.New("unknown page")

// Page names the view the storefront renders.
type Page string

const (
	PageHome     Page = "home"
	PageCatalog  Page = "catalog"
	PageAbout    Page = "about"
	PageContacts Page = "contacts"
	PageDelivery Page = "delivery"
	PagePromo    Page = "promo"
)

var Pages = []Page{PageHome, PageCatalog, PageAbout, PageContacts, PageDelivery, PagePromo}

func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownPage, "%q", s)
}

// ContactMessage is a submission of the contacts page form.
type ContactMessage struct {
	Name    string `bson:"name" json:"name" binding:"required,max=200"`
	Contact string `bson:"contact" json:"contact" binding:"required,max=200"`
	Message string `bson:"message" json:"message" binding:"required,max=5000"`
}
