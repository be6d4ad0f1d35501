package view

// Lang resolves UI message keys for one locale.
type Lang struct {
	Locale   string
	messages map[string]string
}

// NewLang returns the table for locale, falling back to Indonesian.
func NewLang(locale string) *Lang {
	messages, ok := tables[locale]
	if !ok {
		locale = "id"
		messages = tables[locale]
	}
	return &Lang{Locale: locale, messages: messages}
}

// T returns the message for key, or the key itself when it has no entry.
func (l *Lang) T(key string) string {
	if msg, ok := l.messages[key]; ok {
		return msg
	}
	return key
}

var tables = map[string]map[string]string{
	"id": {
		"app.locale":                "id",
		"app.name":                  "Cagar Budaya",
		"app.login":                 "Masuk",
		"app.logout":                "Keluar",
		"app.email":                 "Email",
		"app.password":              "Kata Sandi",
		"app.cancel":                "Batal",
		"app.back":                  "Kembali",
		"app.edit":                  "Ubah",
		"app.delete":                "Hapus",
		"app.show":                  "Detail",
		"app.search":                "Cari",
		"app.search_placeholder":    "Cari nama...",
		"app.action":                "Aksi",
		"app.table_no":              "#",
		"app.total":                 "Total",
		"app.previous":              "Sebelumnya",
		"app.next":                  "Berikutnya",
		"app.created_by":            "Dibuat oleh",
		"app.delete_confirm":        "Anda yakin akan menghapus data ini?",
		"app.delete_confirm_button": "Ya, hapus!",
		"app.not_found":             "Data tidak ditemukan.",
		"app.server_error":          "Terjadi kesalahan server internal.",
		"app.bad_request":           "Permintaan tidak valid.",
		"app.invalid_credentials":   "Email atau kata sandi salah.",
		"app.session_expired":       "Sesi Anda telah berakhir. Silakan masuk kembali.",

		"cultural_heritage.list":                "Daftar Cagar Budaya",
		"cultural_heritage.empty":               "Belum ada data cagar budaya.",
		"cultural_heritage.detail":              "Detail Cagar Budaya",
		"cultural_heritage.create":              "Input Cagar Budaya Baru",
		"cultural_heritage.created":             "Input Cagar Budaya baru telah berhasil.",
		"cultural_heritage.edit":                "Edit Cagar Budaya",
		"cultural_heritage.update":              "Update Cagar Budaya",
		"cultural_heritage.updated":             "Data Cagar Budaya telah diupdate.",
		"cultural_heritage.delete":              "Hapus Cagar Budaya",
		"cultural_heritage.deleted":             "Data Cagar Budaya telah dihapus.",
		"cultural_heritage.name":                "Nama Cagar Budaya",
		"cultural_heritage.type":                "Jenis",
		"cultural_heritage.village":             "Desa/Kelurahan",
		"cultural_heritage.description":         "Deskripsi",
		"cultural_heritage.sub_district":        "Kecamatan",
		"cultural_heritage.select_sub_district": "-- Pilih Kecamatan --",

		"art_studio.list":         "Daftar Sanggar Seni",
		"art_studio.empty":        "Belum ada data sanggar seni.",
		"art_studio.detail":       "Detail Sanggar Seni",
		"art_studio.create":       "Input Sanggar Seni Baru",
		"art_studio.created":      "Input Sanggar Seni baru telah berhasil.",
		"art_studio.edit":         "Edit Sanggar Seni",
		"art_studio.update":       "Update Sanggar Seni",
		"art_studio.updated":      "Data Sanggar Seni telah diupdate.",
		"art_studio.delete":       "Hapus Sanggar Seni",
		"art_studio.deleted":      "Data Sanggar Seni telah dihapus.",
		"art_studio.name":         "Nama Sanggar",
		"art_studio.sub_district": "Kecamatan",
		"art_studio.village":      "Desa/Kelurahan",
		"art_studio.leader":       "Ketua",
		"art_studio.art_type":     "Jenis Kesenian",
		"art_studio.building":     "Gedung/Tempat Latihan",
		"art_studio.description":  "Deskripsi",

		"sub_district.list":         "Daftar Kecamatan",
		"sub_district.empty":        "Belum ada data kecamatan.",
		"sub_district.detail":       "Detail Kecamatan",
		"sub_district.create":       "Input Kecamatan Baru",
		"sub_district.created":      "Input Kecamatan baru telah berhasil.",
		"sub_district.edit":         "Edit Kecamatan",
		"sub_district.update":       "Update Kecamatan",
		"sub_district.updated":      "Data Kecamatan telah diupdate.",
		"sub_district.delete":       "Hapus Kecamatan",
		"sub_district.deleted":      "Data Kecamatan telah dihapus.",
		"sub_district.undeleteable": "Kecamatan tidak dapat dihapus karena masih digunakan oleh data cagar budaya.",
		"sub_district.name":         "Nama Kecamatan",
		"sub_district.description":  "Deskripsi",
	},
	"en": {
		"app.locale":                "en",
		"app.name":                  "Cultural Heritage",
		"app.login":                 "Login",
		"app.logout":                "Logout",
		"app.email":                 "Email",
		"app.password":              "Password",
		"app.cancel":                "Cancel",
		"app.back":                  "Back",
		"app.edit":                  "Edit",
		"app.delete":                "Delete",
		"app.show":                  "View",
		"app.search":                "Search",
		"app.search_placeholder":    "Search name...",
		"app.action":                "Action",
		"app.table_no":              "#",
		"app.total":                 "Total",
		"app.previous":              "Previous",
		"app.next":                  "Next",
		"app.created_by":            "Created by",
		"app.delete_confirm":        "Are you sure to delete this?",
		"app.delete_confirm_button": "Yes, delete it!",
		"app.not_found":             "Record not found.",
		"app.server_error":          "Internal server error.",
		"app.bad_request":           "Invalid request.",
		"app.invalid_credentials":   "These credentials do not match our records.",
		"app.session_expired":       "Your session has ended. Please log in again.",

		"cultural_heritage.list":                "Cultural Heritage List",
		"cultural_heritage.empty":               "No cultural heritage recorded yet.",
		"cultural_heritage.detail":              "Cultural Heritage Detail",
		"cultural_heritage.create":              "Create New Cultural Heritage",
		"cultural_heritage.created":             "A new Cultural Heritage has been created.",
		"cultural_heritage.edit":                "Edit Cultural Heritage",
		"cultural_heritage.update":              "Update Cultural Heritage",
		"cultural_heritage.updated":             "Cultural Heritage data has been updated.",
		"cultural_heritage.delete":              "Delete Cultural Heritage",
		"cultural_heritage.deleted":             "Cultural Heritage has been deleted.",
		"cultural_heritage.name":                "Cultural Heritage Name",
		"cultural_heritage.type":                "Type",
		"cultural_heritage.village":             "Village",
		"cultural_heritage.description":         "Description",
		"cultural_heritage.sub_district":        "Sub-district",
		"cultural_heritage.select_sub_district": "-- Select Sub-district --",

		"art_studio.list":         "Art Studio List",
		"art_studio.empty":        "No art studio recorded yet.",
		"art_studio.detail":       "Art Studio Detail",
		"art_studio.create":       "Create New Art Studio",
		"art_studio.created":      "A new Art Studio has been created.",
		"art_studio.edit":         "Edit Art Studio",
		"art_studio.update":       "Update Art Studio",
		"art_studio.updated":      "Art Studio data has been updated.",
		"art_studio.delete":       "Delete Art Studio",
		"art_studio.deleted":      "Art Studio has been deleted.",
		"art_studio.name":         "Art Studio Name",
		"art_studio.sub_district": "Sub-district",
		"art_studio.village":      "Village",
		"art_studio.leader":       "Leader",
		"art_studio.art_type":     "Art Type",
		"art_studio.building":     "Building",
		"art_studio.description":  "Description",

		"sub_district.list":         "Sub-district List",
		"sub_district.empty":        "No sub-district recorded yet.",
		"sub_district.detail":       "Sub-district Detail",
		"sub_district.create":       "Create New Sub-district",
		"sub_district.created":      "A new Sub-district has been created.",
		"sub_district.edit":         "Edit Sub-district",
		"sub_district.update":       "Update Sub-district",
		"sub_district.updated":      "Sub-district data has been updated.",
		"sub_district.delete":       "Delete Sub-district",
		"sub_district.deleted":      "Sub-district has been deleted.",
		"sub_district.undeleteable": "The sub-district cannot be deleted while cultural heritage records use it.",
		"sub_district.name":         "Sub-district Name",
		"sub_district.description":  "Description",
	},
}
