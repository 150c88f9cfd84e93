package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a balance would go negative
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToGetUser          = "failed to get user"
	ErrMsgFailedToCreateUser       = "failed to create user"
	ErrMsgFailedToUpdateUser       = "failed to update user"
	ErrMsgFailedToAdjustBalance    = "failed to adjust balance"
	ErrMsgFailedToInsertHistory    = "failed to insert game history"
	ErrMsgFailedToListHistory      = "failed to list game history"
	ErrMsgFailedToInsertRound      = "failed to insert round"
	ErrMsgFailedToListRounds       = "failed to list rounds"
	ErrMsgFailedToInsertInventory  = "failed to insert inventory item"
	ErrMsgFailedToListInventory    = "failed to list inventory"
	ErrMsgFailedToInsertDeposit    = "failed to insert deposit"
	ErrMsgFailedToUpdateDeposit    = "failed to update deposit"
	ErrMsgFailedToInsertWithdrawal = "failed to insert withdrawal"
	ErrMsgFailedToUpdateWithdrawal = "failed to update withdrawal"
	ErrMsgFailedToListWithdrawals  = "failed to list withdrawals"
	ErrMsgFailedToQueryStats       = "failed to query stats"
)

const userColumns = `telegram_id, first_name, last_name, username, photo_url, balance, total_deposited,
	games_played, ref_id, ref_percent, ref_balance, created_at, last_online`

// User queries
const (
	SQLSelectUser          = `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	SQLSelectUserForUpdate = `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1 FOR UPDATE`

	SQLInsertUser = `
		INSERT INTO users (telegram_id, first_name, last_name, username, photo_url, balance, ref_id, ref_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, last_online`

	SQLTouchUser = `
		UPDATE users
		SET first_name = $2, last_name = $3, username = $4, photo_url = $5, last_online = NOW()
		WHERE telegram_id = $1`

	SQLAdjustBalance = `UPDATE users SET balance = balance + $2 WHERE telegram_id = $1 RETURNING balance`
	SQLSetBalance    = `UPDATE users SET balance = $2 WHERE telegram_id = $1`
	SQLIncGames      = `UPDATE users SET games_played = games_played + 1 WHERE telegram_id = $1`

	SQLAddTotalDeposited = `UPDATE users SET total_deposited = total_deposited + $2 WHERE telegram_id = $1`
	SQLAdjustRefBalance  = `UPDATE users SET ref_balance = ref_balance + $2 WHERE telegram_id = $1 RETURNING ref_balance`
	SQLSetRefPercent     = `UPDATE users SET ref_percent = $2 WHERE telegram_id = $1`

	SQLTopDepositors = `SELECT ` + userColumns + ` FROM users ORDER BY total_deposited DESC, telegram_id ASC LIMIT $1`

	SQLListReferrals = `
		SELECT first_name, username, total_deposited
		FROM users WHERE ref_id = $1
		ORDER BY created_at DESC`

	SQLSearchUsers = `SELECT ` + userColumns + ` FROM users
		WHERE username ILIKE $1 OR first_name ILIKE $1 OR CAST(telegram_id AS TEXT) = $2
		ORDER BY last_online DESC LIMIT $3`

	SQLCountUsers       = `SELECT COUNT(*) FROM users`
	SQLCountOnlineSince = `SELECT COUNT(*) FROM users WHERE last_online >= $1`
	SQLSumDeposited     = `SELECT COALESCE(SUM(total_deposited), 0) FROM users`
)

// Game queries
const (
	SQLInsertGameHistory = `
		INSERT INTO game_history (user_id, game_type, stake, result, multiplier, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	gameHistoryColumns = `id, user_id, game_type, stake, result, multiplier, details, created_at`

	SQLListGameHistory = `SELECT ` + gameHistoryColumns + ` FROM game_history
		WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	SQLRecentGames = `SELECT ` + gameHistoryColumns + ` FROM game_history
		ORDER BY created_at DESC, id DESC LIMIT $1`

	SQLInsertRound  = `INSERT INTO rolls_rounds (round, result) VALUES ($1, $2)`
	SQLRecentRounds = `SELECT round, result FROM rolls_rounds ORDER BY round DESC LIMIT $1`
)

// Inventory queries
const (
	inventoryColumns = `id, user_id, gift_name, gift_image, sell_price, created_at`

	SQLInsertInventory = `
		INSERT INTO inventory (user_id, gift_name, gift_image, sell_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	SQLListInventory = `SELECT ` + inventoryColumns + ` FROM inventory WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	SQLSelectInventoryForUpdate = `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE id = $1 AND user_id = $2 FOR UPDATE`

	SQLDeleteInventory = `DELETE FROM inventory WHERE id = $1`
)

// Wallet queries
const (
	SQLInsertDeposit = `
		INSERT INTO deposits (user_id, amount, method, status, memo)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`

	SQLSelectDepositByMemoForUpdate = `
		SELECT id, user_id, amount, method, status, COALESCE(memo, ''), created_at
		FROM deposits WHERE memo = $1 FOR UPDATE`

	SQLUpdateDepositStatus = `UPDATE deposits SET status = $2 WHERE id = $1`

	SQLExpirePendingDeposits = `
		UPDATE deposits SET status = 'expired'
		WHERE status = 'pending' AND created_at < $1`

	withdrawalColumns = `id, user_id, amount, wallet_address, status, admin_note, created_at, updated_at`

	SQLInsertWithdrawal = `
		INSERT INTO withdrawal_requests (user_id, amount, wallet_address, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	SQLSelectWithdrawalForUpdate = `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`

	SQLUpdateWithdrawal = `
		UPDATE withdrawal_requests SET status = $2, admin_note = $3, updated_at = NOW()
		WHERE id = $1`

	SQLListWithdrawals = `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	SQLListPendingWithdrawals = `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE status = 'pending' ORDER BY created_at ASC, id ASC`
)
