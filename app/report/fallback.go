package report

import "fmt"

// fallbackContent is the static study capsule used when every
// generative pass fails. It keeps the daily mail useful: evergreen
// banking facts plus a revision checklist, dated like a normal digest.
func fallbackContent(dateStr string) string {
	return fmt.Sprintf(`🔷 DAILY BANKING CAPSULE - %s

🔹 Live news generation was unavailable today. Revise these evergreen facts instead.

🔷 BANKING & FINANCE ESSENTIALS

🔹 The Reserve Bank of India (RBI) was established on 1 April 1935 and nationalized in 1949. Headquarters: Mumbai.
✅ RBI is the banker's bank and the lender of last resort.

🔹 The Monetary Policy Committee (MPC) has 6 members and meets at least 4 times a year to set the repo rate.
✅ Repo rate is the rate at which RBI lends to commercial banks against securities.

🔹 SEBI, established in 1988 and given statutory powers in 1992, regulates the securities market. Headquarters: Mumbai.
✅ SEBI protects investor interests and regulates stock exchanges.

🔹 NABARD, established on 12 July 1982, is the apex institution for agriculture and rural development credit.
✅ NABARD refinances regional rural banks and cooperative banks.

🔹 NPCI operates UPI, IMPS, RuPay and the National Automated Clearing House.
✅ UPI enables instant 24x7 interbank payments through mobile devices.

🔷 KEY RATES TO REVISE

🔹 Cash Reserve Ratio (CRR): share of deposits banks keep with RBI in cash.
🔹 Statutory Liquidity Ratio (SLR): share of deposits banks keep in liquid assets.
🔹 Bank Rate: rate at which RBI lends long term without securities.
✅ Check the latest values on the RBI website before your exam.

🔷 REVISION CHECKLIST

🔹 Current repo rate, CRR and SLR
🔹 Latest government schemes for financial inclusion
🔹 Recent appointments: RBI Governor, SEBI Chairperson, bank CMDs
🔹 India's latest GDP growth and inflation figures
✅ Tomorrow's digest resumes automatically once news sources recover.`, dateStr)
}
