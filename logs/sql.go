package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime,
  x_player varchar,
  o_player varchar,
  first string,
  winner string,
  moves varchar,
  final varchar,
  position int,
  plies int
)`

const createPositionIndex = `
CREATE INDEX IF NOT EXISTS games_position ON games (position)
`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, mark, result
) AS
SELECT id, x_player, o_player, 'x',
       CASE winner WHEN 'x' THEN 'win' WHEN 'o' THEN 'lose' ELSE 'draw' END
 FROM games
UNION ALL
SELECT id, o_player, x_player, 'o',
       CASE winner WHEN 'o' THEN 'win' WHEN 'x' THEN 'lose' ELSE 'draw' END
 FROM games
`

const insertStmt = `
INSERT INTO games (time, x_player, o_player, first, winner, moves, final, position, plies)
VALUES (:time, :x_player, :o_player, :first, :winner, :moves, :final, :position, :plies)
`

const selectGames = `
SELECT id, time, x_player, o_player, first, winner, moves, final, position, plies
FROM games
ORDER BY id DESC
LIMIT ?
`

const selectGamesAt = `
SELECT id, time, x_player, o_player, first, winner, moves, final, position, plies
FROM games
WHERE position = ?
ORDER BY id DESC
LIMIT ?
`

const selectSummary = `
SELECT player,
       COUNT(*) AS games,
       SUM(result = 'win') AS wins,
       SUM(result = 'lose') AS losses,
       SUM(result = 'draw') AS draws
FROM player_games
GROUP BY player
ORDER BY player
`
