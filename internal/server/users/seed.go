package users

import "github.com/dmitrijs2005/userconsole/internal/filex"

// DefaultSeed returns the ten users the API starts with.
func DefaultSeed() []Record {
	rows := [][5]string{
		{"Leanne Graham", "Bret", "Sincere@april.biz", "1-770-736-8031 x56442", "hildegard.org"},
		{"Ervin Howell", "Antonette", "Shanna@melissa.tv", "010-692-6593 x09125", "anastasia.net"},
		{"Clementine Bauch", "Samantha", "Nathan@yesenia.net", "1-463-123-4447", "ramiro.info"},
		{"Patricia Lebsack", "Karianne", "Julianne.OConner@kory.org", "493-170-9623 x156", "kale.biz"},
		{"Chelsey Dietrich", "Kamren", "Lucio_Hettinger@annie.ca", "(254)954-1289", "demarco.info"},
		{"Mrs. Dennis Schulist", "Leopoldo_Corkery", "Karley_Dach@jasper.info", "1-477-935-8478 x6430", "ola.org"},
		{"Kurtis Weissnat", "Elwyn.Skiles", "Telly.Hoeger@billy.biz", "210.067.6132", "elvis.io"},
		{"Nicholas Runolfsdottir V", "Maxime_Nienow", "Sherwood@rosamond.me", "586.493.6943 x140", "jacynthe.com"},
		{"Glenna Reichert", "Delphine", "Chaim_McDermott@dana.io", "(775)976-6794 x41206", "conrad.com"},
		{"Clementina DuBuque", "Moriah.Stanton", "Rey.Padberg@karina.biz", "024-648-3804", "ambrose.net"},
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, Record{
			"name":     r[0],
			"username": r[1],
			"email":    r[2],
			"phone":    r[3],
			"website":  r[4],
		})
	}
	return out
}

// LoadSeedFile reads a list of user objects from a JSON or YAML file.
func LoadSeedFile(path string) ([]Record, error) {
	var recs []Record
	if err := filex.ReadData(path, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
