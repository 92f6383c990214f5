package bot

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rupiah prints numbers with Indonesian grouping ("." as the thousands
// separator).
var rupiah = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount in the user-facing currency style:
// thousands separators, no decimals (e.g. "Rp25.000").
func FormatRupiah(amount float64) string {
	return rupiah.Sprintf("Rp%.0f", amount)
}

func confirmation(amount float64, description string, total float64) string {
	return fmt.Sprintf(
		"✅ *Ditambahkan:* %s - %s\n📊 *Total hari ini:* %s",
		FormatRupiah(amount), description, FormatRupiah(total),
	)
}

const saveErrorReply = "❌ Error menyimpan transaksi, silakan coba lagi nanti."

const helpReply = `❌ Saya tidak mengerti formatnya.

✅ *Format yang valid:*
• ` + "`makan 25000`" + ` atau ` + "`25000 makan`" + `
• ` + "`sewa 2jt`" + ` atau ` + "`2jt sewa`" + `
• ` + "`belanja 1.5jt`" + `

💰 *Singkatan:*
• k/rb = ribu (25k = 25000, 25rb = 25000)
• m/jt = juta (2jt = 2000000, 2m = 2000000)`

const startReply = `💰 *Personal Finance Tracker* 🤖

*Cara menggunakan:*
Kirim pengeluaran dalam format apa saja:
• ` + "`makan 25000`" + ` atau ` + "`25000 makan`" + `
• ` + "`sewa 2jt`" + ` atau ` + "`2jt sewa`" + `
• ` + "`belanja 1.5jt`" + `

*Singkatan yang didukung:*
• *k* atau *rb* = ribu (25k = 25000, 25rb = 25000)
• *m* atau *jt* = juta (2jt = 2000000, 2m = 2000000)

*Contoh:*
` + "`makan 25rb`" + ` → Rp25.000
` + "`sewa 2jt`" + ` → Rp2.000.000
` + "`belanja 1.5jt`" + ` → Rp1.500.000

Coba sekarang! Kirim: ` + "`makan 25rb`"
